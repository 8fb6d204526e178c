// Package playground is an interactive Bubble Tea program for exploring
// the nav header and tab bar. Every update normalizes and resolves the
// axis again; the model never patches a plan by hand.
package playground

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/eventui/internal/nav"
	"github.com/alexisbeaulieu97/eventui/internal/ui/components"
)

const (
	defaultWidth = 72
	minWidth     = 40
	maxActivity  = 5
)

// Options configures a new playground.
type Options struct {
	Theme   components.Theme
	Links   []string
	Initial nav.AxisInput
	Tab     nav.TabID
	Width   int
}

// activity is shared between model copies so callbacks fired from a plan
// can record what happened.
type activity struct {
	entries []string
}

func (a *activity) record(format string, args ...any) {
	a.entries = append(a.entries, fmt.Sprintf(format, args...))
	if len(a.entries) > maxActivity {
		a.entries = a.entries[len(a.entries)-maxActivity:]
	}
}

// Model is the playground state.
type Model struct {
	input nav.AxisInput
	plan  nav.RenderPlan
	err   error

	tabs  nav.TabSelection
	links []string
	log   *activity

	theme components.Theme
	keys  keyMap
	help  help.Model

	width    int
	height   int
	quitting bool
}

// NewModel creates a playground and resolves its initial plan.
func NewModel(opts Options) Model {
	theme := opts.Theme
	if theme.Variants == nil {
		theme = components.DefaultTheme()
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	tab := opts.Tab
	if tab == "" {
		tab = nav.TabHome
	}

	m := Model{
		input: opts.Initial,
		tabs:  nav.NewTabSelection(tab),
		links: append([]string(nil), opts.Links...),
		log:   &activity{},
		theme: theme,
		keys:  defaultKeyMap(),
		help:  help.New(),
		width: max(width, minWidth),
	}
	return m.resolve()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// resolve runs the pipeline for the current input.
func (m Model) resolve() Model {
	entries := make([]nav.NavLinkEntry, 0, len(m.links))
	for _, label := range m.links {
		entries = append(entries, nav.NavLinkEntry{
			Label:    label,
			Activate: func() { m.log.record("opened %s", label) },
		})
	}

	cb := nav.Callbacks{
		OnSignUp:     func() { m.log.record("sign up") },
		OnMenuToggle: func() { m.log.record("menu toggled") },
		OnBackClick:  func() { m.log.record("back") },
	}

	m.plan, m.err = nav.Pipeline(m.input, entries, cb, nav.WithActionSlot(components.GhostButton("Share")))
	return m
}

// Plan returns the current plan and resolution error.
func (m Model) Plan() (nav.RenderPlan, error) {
	return m.plan, m.err
}

// Input returns the current raw axis input.
func (m Model) Input() nav.AxisInput {
	return m.input
}

// Tabs returns the tab selection.
func (m Model) Tabs() nav.TabSelection {
	return m.tabs
}

// Activity returns the most recent callback activity, oldest first.
func (m Model) Activity() []string {
	return append([]string(nil), m.log.entries...)
}
