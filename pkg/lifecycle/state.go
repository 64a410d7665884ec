// SPDX-License-Identifier: MPL-2.0

package lifecycle

const (
	// StateUnresolved is the state before Init and after Terminate.
	StateUnresolved State = iota
	// StateResolving indicates Init is locating tables and binding functions.
	StateResolving
	// StateResolved indicates the surface is complete and usable.
	StateResolved
	// StateFailed is terminal until Terminate: resolution failed.
	StateFailed
)

// State is the resolution state of a Manager.
type State int32

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolving:
		return "resolving"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether Init has finished, successfully or not.
// Only Terminate leaves a terminal state.
func (s State) IsTerminal() bool {
	return s == StateResolved || s == StateFailed
}
