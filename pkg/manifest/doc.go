// SPDX-License-Identifier: MPL-2.0

// Package manifest models the description of a host application's native
// plugin API: one primary category and an ordered list of extension
// categories, each a chain of versioned revisions holding function
// declarations.
//
// Manifests are read from JSON (the host's own gdnative_api.json layout or
// the canonical tag/functions layout), CUE or TOML and validated against an
// embedded CUE schema. A parsed Manifest is immutable; Revisions returns the
// canonical flattened order every downstream component relies on.
package manifest
