// SPDX-License-Identifier: MPL-2.0

// Package gdapi is the typed surface of the gdnative host API described by
// testdata/gdnative_api.json.
//
// Surface is generated; regenerate it after editing the manifest. A module
// resolves it once from the primary api head the host passes to its init
// hook:
//
//	s, err := gdapi.Resolve(foreign.NativeView{}, head, foreign.PuregoBinder{})
//
// and then calls host functions through the accessors.
//
// The manifest is a trimmed fixture: it keeps a handful of functions from
// each revision, so slot indices are positions in that trimmed manifest and
// not in the host's real api structs. The package exercises the generator
// and the resolver end to end; it is not a usable gdnative binding. Generate
// from the host's full gdnative_api.json for that.
package gdapi

//go:generate go run ../.. generate --manifest testdata/gdnative_api.json --output surface_gen.go --package gdapi
