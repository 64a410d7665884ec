// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates documents against embedded CUE schemas.
//
// Every document surfacegen reads (API manifests and the CLI configuration)
// goes through the same flow:
//
//  1. Compile the embedded schema
//  2. Compile the user document (or encode a Go value) and unify it with the
//     schema definition
//  3. Validate the unified value and decode it
//
// # Usage
//
//	//go:embed manifest_schema.cue
//	var schema []byte
//
//	unified, err := cueutil.Compile(schema, data, "#Manifest",
//	    cueutil.WithFilename("gdnative_api.json"))
//	if err != nil {
//	    return nil, err // includes the JSON path of the offending field
//	}
//
// JSON is a subset of CUE, so JSON documents are compiled without conversion.
// Other formats are decoded to plain Go values first and passed to Unify.
package cueutil
