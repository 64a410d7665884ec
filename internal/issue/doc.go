// SPDX-License-Identifier: MPL-2.0

// Package issue turns generation failures into user-facing messages.
//
// ActionableError carries what surfacegen was doing, on which file, and what
// the user can try next. The issue catalog holds longer Markdown guidance per
// failure kind, rendered with glamour in verbose mode.
package issue
