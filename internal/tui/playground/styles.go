package playground

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/eventui/internal/ui/components"
)

func titleStyle(theme components.Theme) lipgloss.Style {
	return components.Style(theme, lipgloss.NewStyle().MarginBottom(1),
		components.Typography(components.TypographyTitle))
}

func axisStyle(theme components.Theme) lipgloss.Style {
	return components.Style(theme, lipgloss.NewStyle(),
		components.Typography(components.TypographyCode))
}

func mutedStyle(theme components.Theme) lipgloss.Style {
	return components.Style(theme, lipgloss.NewStyle(),
		components.Typography(components.TypographyCaption))
}

func sectionStyle() lipgloss.Style {
	return lipgloss.NewStyle().MarginTop(1)
}
