package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 40

// Divider renders a horizontal separator line.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider that fills the available width.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider, taking its width from the context
// when none was set explicitly.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 && ctx.Constraints.HasWidth() {
		if ctx.Constraints.MaxWidth >= 0 {
			width = ctx.Constraints.MaxWidth
		} else {
			width = ctx.Constraints.MinWidth
		}
	}
	if width <= 0 {
		width = defaultDividerWidth
	}

	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithStyle sets the divider style.
func (d *Divider) WithStyle(style lipgloss.Style) *Divider {
	d.SetStyle(style)
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}

// DashedDivider creates a dashed divider.
func DashedDivider() *Divider {
	return NewDivider().WithChar("╌")
}
