package playground

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/eventui/internal/ui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.NewContext(m.theme).WithConstraints(components.WithMaxWidth(m.width))

	sections := []string{
		titleStyle(m.theme).Render("eventui playground"),
		m.axisLine(),
		sectionStyle().Render(components.NavHeaderFor(m.plan, m.err).WithWidth(m.width).ViewWithContext(ctx)),
		sectionStyle().Render(components.NewTabBar(m.tabs).ViewWithContext(ctx)),
		sectionStyle().Render(m.activityView()),
		sectionStyle().Render(m.help.View(m.keys)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) axisLine() string {
	parts := []string{
		axisStyle(m.theme).Render(string(m.effectiveContext()) + "/" + string(m.effectiveSize()) + "/" + string(m.effectiveState())),
	}
	if m.input.Expanded {
		parts = append(parts, mutedStyle(m.theme).Render("expanded"))
	}
	if m.err == nil {
		parts = append(parts, mutedStyle(m.theme).Render("→ "+m.plan.Variant.String()))
	}
	parts = append(parts, mutedStyle(m.theme).Render("theme "+m.theme.Name))
	return strings.Join(parts, " ")
}

func (m Model) activityView() string {
	entries := m.Activity()
	if len(entries) == 0 {
		return mutedStyle(m.theme).Render("no activity yet")
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, "• "+entry)
	}
	return strings.Join(lines, "\n")
}
