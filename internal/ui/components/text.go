package components

import "github.com/charmbracelet/lipgloss"

// Text is a primitive component for styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// LabelText creates bold label text.
func LabelText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyLabel))
}

// CaptionText creates faint secondary text.
func CaptionText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyCaption))
}

// CodeText creates code-styled text.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyCode))
}

// EmphasisText creates emphasized text.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyEmphasis))
}
