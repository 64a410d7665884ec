// SPDX-License-Identifier: MPL-2.0

// Package lifecycle owns the single resolved API surface of a loaded
// plugin module.
//
// The host calls a module's init hook once with the primary api head and
// its terminate hook when unloading. Manager maps those hooks onto a small
// state machine: Unresolved, Resolving, then Resolved or Failed. Resolution
// is attempted once per Init; a failed module stays failed until Terminate.
package lifecycle
