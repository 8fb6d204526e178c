package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Badge is a short pill of text, usually an event category or a count.
type Badge struct {
	BaseComponent
	text string
}

// NewBadge creates a neutral badge.
func NewBadge(text string) *Badge {
	b := &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
	b.SetAppliers(Background(PaletteNeutral), PaddingX(SpacingXS))
	return b
}

// CategoryBadge creates a badge filled with the category colour.
func CategoryBadge(c Category) *Badge {
	b := &Badge{
		BaseComponent: NewBaseComponent(),
		text:          strings.ToUpper(c.String()),
	}
	b.SetAppliers(CategoryFill(c), PaddingX(SpacingXS), Typography(TypographyLabel))
	return b
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.ComputeStyle(ctx.Theme).Render(b.text)
}

// WithStyle sets the badge style.
func (b *Badge) WithStyle(style lipgloss.Style) *Badge {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}
