// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"
)

// Config holds surfacegen settings.
type Config struct {
	Manifest string `json:"manifest" mapstructure:"manifest"`
	Output   string `json:"output" mapstructure:"output"`
	Package  string `json:"package" mapstructure:"package"`
	BuildTag string `json:"build_tag" mapstructure:"build_tag"`
	LogLevel string `json:"log_level" mapstructure:"log_level"`
	Style    string `json:"style" mapstructure:"style"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		Manifest: "gdnative_api.json",
		Output:   "surface_gen.go",
		Package:  "gdapi",
		LogLevel: "info",
		Style:    "dark",
	}
}

// GenerateCUE renders cfg as a surfacegen.cue document.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// surfacegen configuration\n\n")
	fmt.Fprintf(&sb, "manifest:  %q\n", cfg.Manifest)
	fmt.Fprintf(&sb, "output:    %q\n", cfg.Output)
	fmt.Fprintf(&sb, "package:   %q\n", cfg.Package)
	if cfg.BuildTag != "" {
		fmt.Fprintf(&sb, "build_tag: %q\n", cfg.BuildTag)
	}
	fmt.Fprintf(&sb, "log_level: %q\n", cfg.LogLevel)
	fmt.Fprintf(&sb, "style:     %q\n", cfg.Style)
	return sb.String()
}
