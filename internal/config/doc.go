// SPDX-License-Identifier: MPL-2.0

// Package config loads surfacegen settings using Viper with CUE as the file
// format.
//
// Settings come, in increasing precedence, from built-in defaults, a
// surfacegen.cue file (the user config directory, then the working
// directory), SURFACEGEN_* environment variables and finally command-line
// flags, which the CLI applies on top of the loaded Config. The file is
// validated against an embedded CUE schema (config_schema.cue).
package config
