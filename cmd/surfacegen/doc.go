// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the surfacegen command line interface.
package cmd
