// SPDX-License-Identifier: MPL-2.0

// Package foreign resolves a typed API surface out of host-owned memory.
//
// The host hands a plugin one pointer: the head of the primary api struct
// chain. Every api struct starts with the same header
//
//	struct { uint32 type; struct { uint32 major, minor } version; const api *next; }
//
// and the primary head additionally carries the extension fan-out
//
//	uint32 num_extensions; const api **extensions;
//
// followed, in every struct, by one function pointer per API function in
// declaration order.
//
// All reads go through a View, so the traversal logic never handles raw
// addresses itself. NativeView reads process memory; memtest.Arena builds
// synthetic layouts for tests.
//
// Resolution is all or nothing: Resolve either returns a Resolution with
// every requested table and function slot populated, or an error naming the
// first missing revision (ErrAPINotFound) or null slot (ErrMissingFunction).
package foreign
