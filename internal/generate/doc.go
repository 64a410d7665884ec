// SPDX-License-Identifier: MPL-2.0

// Package generate runs the manifest-to-surface pipeline: parse the
// manifest, plan and render the surface, and replace the output file
// atomically.
package generate
