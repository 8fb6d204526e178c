package playground

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/eventui/internal/nav"
	"github.com/alexisbeaulieu97/eventui/internal/ui/components"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, minWidth)
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Context):
		m.input.Context = next(nav.Contexts(), m.effectiveContext())
		m.input.State = nav.StateDefault
		m.input.Expanded = false
		m = m.resolve()

	case key.Matches(msg, m.keys.Size):
		m.input.Size = next(nav.Sizes(), m.effectiveSize())
		m.input.Expanded = false
		m = m.resolve()

	case key.Matches(msg, m.keys.State):
		m.input.State = next(nav.AllowedStates(m.effectiveContext()), m.effectiveState())
		m.input.Expanded = false
		m = m.resolve()

	case key.Matches(msg, m.keys.Menu):
		// Toggling flips the expanded input and resolves again. A raw
		// expanded state counts as the flag being set.
		if m.err == nil && m.plan.Trigger(nav.SectionMenuToggle) {
			if m.input.State == nav.StateExpanded {
				m.input.State = nav.StateDefault
				m.input.Expanded = true
			}
			m.input = m.input.ToggleExpanded()
			m = m.resolve()
		}

	case key.Matches(msg, m.keys.Back):
		if m.err == nil && m.plan.Trigger(nav.SectionBackControl) {
			m.input.State = nav.StateDefault
			m = m.resolve()
		}

	case key.Matches(msg, m.keys.SignUp):
		if m.err == nil {
			m.plan.Trigger(nav.SectionPrimaryAction)
		}

	case key.Matches(msg, m.keys.Link):
		if index, err := strconv.Atoi(msg.String()); err == nil && m.err == nil {
			m.plan.ActivateLink(index - 1)
		}

	case key.Matches(msg, m.keys.NextTab):
		m.tabs, _ = m.tabs.Shift(1)

	case key.Matches(msg, m.keys.PrevTab):
		m.tabs, _ = m.tabs.Shift(-1)

	case key.Matches(msg, m.keys.Theme):
		if m.theme.Mode == components.ModeDark {
			m.theme = components.LightTheme()
		} else {
			m.theme = components.DarkTheme()
		}
	}
	return m, nil
}

// The effective axis values fill in Normalize's defaults so cycling starts
// from what is on screen.
func (m Model) effectiveContext() nav.ContextType {
	if m.input.Context == "" {
		return nav.ContextWeb
	}
	return m.input.Context
}

func (m Model) effectiveSize() nav.SizeClass {
	if m.input.Size == "" {
		return nav.SizeBig
	}
	return m.input.Size
}

func (m Model) effectiveState() nav.InteractionState {
	if m.input.State == "" {
		return nav.StateDefault
	}
	return m.input.State
}

// next returns the value after current in values, wrapping around.
func next[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
