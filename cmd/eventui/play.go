package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/eventui/internal/nav"
	"github.com/alexisbeaulieu97/eventui/internal/tui/playground"
)

func newPlayCmd(app *AppContext) *cobra.Command {
	var (
		axis   axisFlags
		active string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Launch the interactive nav header playground",
		Long: `Launch a TUI that re-resolves the nav header on every key press.
Cycle the axes with c, s and i, toggle the mobile menu with m and move the
tab indicator with tab and shift+tab.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, app, axis, active)
		},
	}

	axis.register(cmd)
	cmd.Flags().StringVar(&active, "active", string(nav.TabHome), "Initially active tab")

	return cmd
}

func runPlay(cmd *cobra.Command, app *AppContext, axis axisFlags, active string) error {
	log := app.Log

	if !isTerminal(os.Stdout) {
		return newCommandError("play", "starting the playground", fmt.Errorf("stdout is not a terminal"), "Run eventui play in an interactive terminal.")
	}

	in, err := axis.input()
	if err != nil {
		return newCommandError("play", "parsing axis flags", err, axisSuggestion(in, err))
	}
	tab, err := nav.ParseTab(active)
	if err != nil {
		return newCommandError("play", fmt.Sprintf("parsing tab %q", active), err, "Use one of home, events, tickets or profile.")
	}
	links, err := defaultLinks(app)
	if err != nil {
		return newCommandError("play", "loading links", err, "Fix the stories setting.")
	}

	m := playground.NewModel(playground.Options{
		Theme:   app.Theme,
		Links:   links,
		Initial: in,
		Tab:     tab,
		Width:   renderWidth(app.Settings.Width, os.Stdout),
	})

	log.Info("launching playground")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		log.Error(err, "playground failed")
		return fmt.Errorf("failed to run playground: %w", err)
	}
	log.Info("playground closed")
	return nil
}
