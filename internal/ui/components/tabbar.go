package components

import (
	"strings"

	"github.com/alexisbeaulieu97/eventui/internal/nav"
	"github.com/charmbracelet/lipgloss"
)

// Tab bar geometry in terminal cells.
const (
	TabBarCells  = nav.TabBarWidth / nav.PixelsPerCell
	TabCellWidth = nav.TabWidth / nav.PixelsPerCell

	indicatorChar = "▔"
)

// TabBar paints the four-tab bottom bar with the active indicator placed
// at nav.IndicatorOffset.
type TabBar struct {
	BaseComponent
	selection nav.TabSelection
}

// NewTabBar creates a tab bar for selection.
func NewTabBar(selection nav.TabSelection) *TabBar {
	return &TabBar{BaseComponent: NewBaseComponent(), selection: selection}
}

// View renders the tab bar.
func (t *TabBar) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label row and the indicator row. An active
// tab missing from the order renders an error alert.
func (t *TabBar) ViewWithContext(ctx RenderContext) string {
	offset, err := t.selection.Offset()
	if err != nil {
		return ErrorAlert(err.Error()).
			WithTitle("Tab bar unavailable").
			ViewWithContext(ctx.WithConstraints(WithMaxWidth(TabBarCells + 4)))
	}

	theme := ctx.Theme
	labels := make([]string, 0, nav.TabCount)
	for _, tab := range t.selection.Ordered {
		style := Style(theme, lipgloss.NewStyle().Width(TabCellWidth).MaxWidth(TabCellWidth).Align(lipgloss.Center),
			Typography(TypographyCaption))
		if tab == t.selection.Active {
			style = Style(theme, style.UnsetFaint(), Foreground(PalettePrimary), Typography(TypographyLabel))
		}
		labels = append(labels, style.Render(tabLabel(tab)))
	}

	pad := HorizontalSpacer(nav.CellOffset(nav.TabBarPadding)).View()
	gap := HorizontalSpacer(nav.CellOffset(nav.TabGap)).View()
	labelRow := pad + strings.Join(labels, gap) + pad

	start := nav.CellOffset(offset)
	indicator := Style(theme, lipgloss.NewStyle(), Foreground(PalettePrimary)).
		Render(strings.Repeat(indicatorChar, TabCellWidth))
	indicatorRow := HorizontalSpacer(start).View() + indicator +
		HorizontalSpacer(TabBarCells-start-TabCellWidth).View()

	style := Style(theme, t.ComputeStyle(theme), Background(PaletteSurface)).Width(TabBarCells)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, labelRow, indicatorRow))
}

// tabLabel shortens titles to the tab width.
func tabLabel(tab nav.TabID) string {
	title := tab.Title()
	if len([]rune(title)) > TabCellWidth {
		return string([]rune(title)[:TabCellWidth-1]) + "…"
	}
	return title
}

// IndicatorColumn returns the column where the indicator starts.
func (t *TabBar) IndicatorColumn() (int, error) {
	offset, err := t.selection.Offset()
	if err != nil {
		return 0, err
	}
	return nav.CellOffset(offset), nil
}

// WithAppliers applies theme-based style modifiers.
func (t *TabBar) WithAppliers(appliers ...StyleFunc) *TabBar {
	t.AddAppliers(appliers...)
	return t
}

// Selection returns the painted selection.
func (t *TabBar) Selection() nav.TabSelection {
	return t.selection
}
