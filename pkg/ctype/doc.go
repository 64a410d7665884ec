// SPDX-License-Identifier: MPL-2.0

// Package ctype maps the raw C type strings found in API manifests to type
// descriptors and spells those descriptors as Go types.
//
// The accepted grammar is deliberately small: an optional leading "const",
// a base identifier made of words, and up to two trailing '*' markers. Base
// identifiers outside the fixed alias table are passed through as opaque
// named types that a header translator is expected to declare.
package ctype
