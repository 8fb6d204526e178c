package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/eventui/internal/docs"
)

func newTokensCmd(app *AppContext) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the palette, spacing and typography tokens of the theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			renderer, err := docs.NewRenderer(docs.Options{
				Theme: app.Theme,
				Width: renderWidth(app.Settings.Width, out),
				Plain: plain || !isTerminal(out),
			})
			if err != nil {
				return err
			}

			tables, err := docs.NewSite(nil, renderer).Tokens(app.Theme)
			if err != nil {
				return newCommandError("tokens", "rendering token tables", err, "Retry with --plain.")
			}
			fmt.Fprint(out, tables)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colour")

	return cmd
}
