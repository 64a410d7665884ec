// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/surfacegen/pkg/ctype"
)

func newMaptypeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "maptype <c-type>...",
		Short: "Show how C types map to Go",
		Long: `Show the descriptor and Go spelling of one or more manifest C types.

Quote types containing spaces or stars:
  surfacegen maptype "const godot_string *" "void *" int64_t`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				desc, err := ctype.Map(raw)
				if err != nil {
					return app.fail(err)
				}
				result, err := desc.GoResult()
				if err != nil {
					return app.fail(err)
				}
				param, paramErr := desc.GoType()

				fmt.Fprintf(app.stdout, "%s\n", NameStyle.Render(desc.String()))
				fmt.Fprintf(app.stdout, "  kind:   %s\n", desc.Kind)
				fmt.Fprintf(app.stdout, "  depth:  %d\n", desc.Depth)
				fmt.Fprintf(app.stdout, "  const:  %t\n", desc.Const)
				if paramErr != nil {
					fmt.Fprintf(app.stdout, "  param:  %s\n", WarningStyle.Render("n/a"))
				} else {
					fmt.Fprintf(app.stdout, "  param:  %s\n", SuccessStyle.Render(param))
				}
				if result == "" {
					result = "(none)"
				}
				fmt.Fprintf(app.stdout, "  result: %s\n", SuccessStyle.Render(result))
			}
			return nil
		},
	}
}
