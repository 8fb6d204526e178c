package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/eventui/internal/docs"
	"github.com/alexisbeaulieu97/eventui/internal/nav"
	"github.com/alexisbeaulieu97/eventui/internal/ui/components"
)

func newTabsCmd(app *AppContext) *cobra.Command {
	var active string

	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "Compute the tab bar indicator offset and render the tab bar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTabs(cmd, app, active)
		},
	}

	cmd.Flags().StringVar(&active, "active", string(nav.TabHome), "Active tab: home, events, tickets or profile")

	return cmd
}

func runTabs(cmd *cobra.Command, app *AppContext, active string) error {
	tab, err := nav.ParseTab(active)
	if err != nil {
		return newCommandError("tabs", fmt.Sprintf("parsing tab %q", active), err, "Use one of home, events, tickets or profile.")
	}

	selection := nav.NewTabSelection(tab)
	offset, err := selection.Offset()
	if err != nil {
		app.Log.Error(err, "indicator offset failed")
		return newCommandError("tabs", "computing indicator offset", err, "Use one of home, events, tickets or profile.")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Active: %s\n", selection.Active)
	fmt.Fprintf(out, "Offset: %dpx (cell %d)\n\n", offset, nav.CellOffset(offset))

	renderer, err := docs.NewRenderer(docs.Options{Theme: app.Theme, Plain: !isTerminal(out)})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, renderer.Component(components.NewTabBar(selection)))
	return nil
}
