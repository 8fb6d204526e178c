package components

import (
	"strings"
	"testing"

	"github.com/alexisbeaulieu97/eventui/internal/nav"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabBarGeometry(t *testing.T) {
	assert.Equal(t, 28, TabBarCells)
	assert.Equal(t, 5, TabCellWidth)
}

func TestTabBarIndicatorColumn(t *testing.T) {
	tests := []struct {
		active nav.TabID
		column int
	}{
		{nav.TabHome, 1},
		{nav.TabEvents, 8},
		{nav.TabTickets, 15},
		{nav.TabProfile, 22},
	}

	for _, tt := range tests {
		t.Run(string(tt.active), func(t *testing.T) {
			bar := NewTabBar(nav.NewTabSelection(tt.active))

			column, err := bar.IndicatorColumn()
			require.NoError(t, err)
			assert.Equal(t, tt.column, column)

			rows := lines(bar.View())
			require.Len(t, rows, 2)
			assert.Equal(t, tt.column, strings.Index(rows[1], indicatorChar))
			for _, row := range rows {
				assert.Equal(t, TabBarCells, lipgloss.Width(row))
			}
		})
	}
}

func TestTabBarFollowsCustomOrder(t *testing.T) {
	selection := nav.TabSelection{
		Active:  nav.TabHome,
		Ordered: [nav.TabCount]nav.TabID{nav.TabProfile, nav.TabTickets, nav.TabEvents, nav.TabHome},
	}

	column, err := NewTabBar(selection).IndicatorColumn()
	require.NoError(t, err)
	assert.Equal(t, 22, column)
}

func TestTabBarLabels(t *testing.T) {
	rows := lines(NewTabBar(nav.NewTabSelection(nav.TabHome)).View())
	assert.Contains(t, rows[0], "Home")
	assert.Contains(t, rows[0], "Even…")
	assert.Equal(t, "Home", tabLabel(nav.TabHome))
	assert.Equal(t, "Tick…", tabLabel(nav.TabTickets))
}

func TestTabBarUnknownTabRendersAlert(t *testing.T) {
	bar := NewTabBar(nav.TabSelection{Active: "settings", Ordered: nav.DefaultTabs})

	_, err := bar.IndicatorColumn()
	require.ErrorIs(t, err, nav.ErrUnknownTab)

	out := plain(bar.View())
	assert.Contains(t, out, "Tab bar unavailable")
	assert.Contains(t, out, string(nav.ErrCodeUnknownTab))
}
