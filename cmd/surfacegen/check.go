// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/surfacegen/internal/generate"
	"github.com/invowk/surfacegen/pkg/types"
)

func newCheckCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check [manifest]",
		Short: "Validate a manifest and list the tables it requires",
		Long: `Validate a manifest without writing anything.

check runs every generation-time validation (structure, type mapping,
category catalog, name derivation) and lists each flattened revision
with the struct name, api-type enumerant and function count the
generated surface would require at runtime.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.cfg.Manifest
			if len(args) == 1 {
				path = args[0]
			}
			if err := types.FilesystemPath(path).Validate(); err != nil {
				return app.fail(err)
			}

			plan, err := generate.Check(cmd.Context(), path)
			if err != nil {
				return app.fail(err)
			}

			fmt.Fprintln(app.stdout, TitleStyle.Render("Required tables"))
			for i, t := range plan.Tables {
				marker := "  "
				if t.Head {
					marker = headMarkerStyle.Render("* ")
				}
				label := t.Tag
				if t.Extension != "" {
					label = fmt.Sprintf("%s (%s)", t.Tag, t.Extension)
				}
				fmt.Fprintf(app.stdout, "%s%-24s %-6s %s  %s\n",
					marker,
					label,
					t.Version,
					NameStyle.Render(t.Struct),
					SubtitleStyle.Render(fmt.Sprintf("%s, %d functions", t.Enumerant, len(plan.FuncsOf(i)))))
			}
			fmt.Fprintln(app.stdout)
			fmt.Fprintf(app.stdout, "%s %s: %d tables, %d functions\n",
				SuccessStyle.Render("✓"), path, len(plan.Tables), len(plan.Funcs))

			if app.verbose {
				fmt.Fprintln(app.stdout)
				fmt.Fprintln(app.stdout, TitleStyle.Render("Functions"))
				for _, f := range plan.Funcs {
					t := plan.Tables[f.Table]
					fmt.Fprintf(app.stdout, "  %s %s\n",
						SubtitleStyle.Render(fmt.Sprintf("%s[%d]", strings.TrimSuffix(t.Struct, "_api_struct"), f.Slot)),
						f.CSignature)
				}
			}
			return nil
		},
	}
}
