// SPDX-License-Identifier: MPL-2.0

// Package synth turns a manifest into the Go source of a typed API surface.
//
// Build flattens the manifest into a Plan: one Table per revision, in
// canonical order, and one Func per function slot with its Go names and
// signature already decided. Render emits the Plan as gofmt'ed Go source.
// Both steps are pure; the same manifest always yields the same bytes.
package synth
