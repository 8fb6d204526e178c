package components

import "github.com/charmbracelet/lipgloss"

// Heading is a title line with an optional subtitle underneath.
type Heading struct {
	BaseComponent
	title    string
	subtitle string
	level    TypographyVariant
}

// NewHeading creates a title-level heading.
func NewHeading(title string) *Heading {
	return &Heading{
		BaseComponent: NewBaseComponent(),
		title:         title,
		level:         TypographyTitle,
	}
}

// DisplayHeading creates a page-level heading.
func DisplayHeading(title string) *Heading {
	return NewHeading(title).WithLevel(TypographyDisplay)
}

// View renders the heading.
func (h *Heading) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the heading with the given theme context.
func (h *Heading) ViewWithContext(ctx RenderContext) string {
	style := h.ComputeStyle(ctx.Theme)
	title := Style(ctx.Theme, style, Typography(h.level)).Render(h.title)
	if h.subtitle == "" {
		return title
	}
	subtitle := Style(ctx.Theme, style, Typography(TypographySubtitle)).Render(h.subtitle)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

// WithSubtitle sets the subtitle line.
func (h *Heading) WithSubtitle(subtitle string) *Heading {
	h.subtitle = subtitle
	return h
}

// WithLevel sets the typography used for the title line.
func (h *Heading) WithLevel(level TypographyVariant) *Heading {
	h.level = level
	return h
}

// WithAppliers applies theme-based style modifiers.
func (h *Heading) WithAppliers(appliers ...StyleFunc) *Heading {
	h.AddAppliers(appliers...)
	return h
}

// Title returns the heading title.
func (h *Heading) Title() string {
	return h.title
}
