// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/surfacegen/internal/config"
	"github.com/invowk/surfacegen/internal/issue"
)

func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage surfacegen configuration",
		Long: `Manage surfacegen configuration.

Configuration is read from the first of:
  - the file given with --config
  - surfacegen.cue in the config directory
    (Linux: ~/.config/surfacegen, macOS: ~/Library/Application Support/surfacegen,
    Windows: %APPDATA%\surfacegen)
  - surfacegen.cue in the working directory

SURFACEGEN_* environment variables override file values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			showConfig(app)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.stdout, config.GenerateCUE(app.cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.loadOpts.ConfigDirPath
			if dir == "" {
				var err error
				if dir, err = config.ConfigDir(); err != nil {
					return app.fail(issue.WrapWithOperation(err, "locate configuration directory"))
				}
			}
			path, err := config.WriteDefault(dir)
			if err != nil {
				return app.fail(issue.WrapWithOperation(err, "write configuration"))
			}
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	return cfgCmd
}

func showConfig(app *App) {
	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	if app.cfgPath != "" {
		fmt.Fprintf(app.stdout, "%s: %s\n", NameStyle.Render("Config file"), app.cfgPath)
	} else {
		fmt.Fprintf(app.stdout, "%s: %s\n", NameStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(app.stdout)

	buildTag := app.cfg.BuildTag
	if buildTag == "" {
		buildTag = SubtitleStyle.Render("(none)")
	} else {
		buildTag = SuccessStyle.Render(buildTag)
	}
	fmt.Fprintf(app.stdout, "%s: %s\n", NameStyle.Render("manifest"), SuccessStyle.Render(app.cfg.Manifest))
	fmt.Fprintf(app.stdout, "%s: %s\n", NameStyle.Render("output"), SuccessStyle.Render(app.cfg.Output))
	fmt.Fprintf(app.stdout, "%s: %s\n", NameStyle.Render("package"), SuccessStyle.Render(app.cfg.Package))
	fmt.Fprintf(app.stdout, "%s: %s\n", NameStyle.Render("build_tag"), buildTag)
	fmt.Fprintf(app.stdout, "%s: %s\n", NameStyle.Render("log_level"), SuccessStyle.Render(app.cfg.LogLevel))
	fmt.Fprintf(app.stdout, "%s: %s\n", NameStyle.Render("style"), SuccessStyle.Render(app.cfg.Style))
}
