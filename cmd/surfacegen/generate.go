// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/surfacegen/internal/generate"
	"github.com/invowk/surfacegen/pkg/types"
)

type generateFlags struct {
	manifest string
	output   string
	pkg      string
	buildTag string
	check    bool
}

func newGenerateCommand(app *App) *cobra.Command {
	var flags generateFlags

	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the Go surface for a manifest",
		Long: `Generate the Go surface for an API manifest.

Flags override the configuration file, which overrides the defaults.
The output file is replaced atomically and left untouched when its
content would not change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := generate.Request{
				ManifestPath: pick(cmd, "manifest", flags.manifest, app.cfg.Manifest),
				OutputPath:   pick(cmd, "output", flags.output, app.cfg.Output),
				Package:      pick(cmd, "package", flags.pkg, app.cfg.Package),
				BuildTag:     pick(cmd, "build-tag", flags.buildTag, app.cfg.BuildTag),
			}
			if err := types.FilesystemPath(req.ManifestPath).Validate(); err != nil {
				return app.fail(fmt.Errorf("--manifest: %w", err))
			}
			if err := types.FilesystemPath(req.OutputPath).ValidateExt(".go"); err != nil {
				return app.fail(fmt.Errorf("--output: %w", err))
			}

			if flags.check {
				return runGenerateCheck(cmd, app, req)
			}
			return runGenerate(cmd, app, req)
		},
	}

	genCmd.Flags().StringVarP(&flags.manifest, "manifest", "m", "", "API manifest to read")
	genCmd.Flags().StringVarP(&flags.output, "output", "o", "", "Go file to write")
	genCmd.Flags().StringVarP(&flags.pkg, "package", "p", "", "package clause of the generated file")
	genCmd.Flags().StringVar(&flags.buildTag, "build-tag", "", "optional //go:build constraint for the generated file")
	genCmd.Flags().BoolVar(&flags.check, "check", false, "fail if the output is missing or out of date instead of writing it")
	return genCmd
}

func runGenerate(cmd *cobra.Command, app *App, req generate.Request) error {
	res, err := generate.Run(cmd.Context(), req, app.logger)
	if err != nil {
		return app.fail(err)
	}
	if res.Unchanged {
		fmt.Fprintf(app.stdout, "%s %s is up to date\n", SuccessStyle.Render("✓"), res.OutputPath)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s wrote %s %s\n",
		SuccessStyle.Render("✓"),
		NameStyle.Render(res.OutputPath),
		SubtitleStyle.Render(fmt.Sprintf("(%d tables, %d functions, %d bytes)", res.Tables, res.Functions, res.Bytes)))
	return nil
}

func runGenerateCheck(cmd *cobra.Command, app *App, req generate.Request) error {
	stale, err := generate.Stale(cmd.Context(), req)
	if err != nil {
		return app.fail(err)
	}
	if stale {
		return app.fail(fmt.Errorf("%w: %s", errStale, req.OutputPath))
	}
	fmt.Fprintf(app.stdout, "%s %s is up to date\n", SuccessStyle.Render("✓"), req.OutputPath)
	return nil
}

// pick returns the flag value when the flag was set, otherwise the
// configured value.
func pick(cmd *cobra.Command, name, flagValue, configured string) string {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configured
}
