package components

import (
	"github.com/alexisbeaulieu97/eventui/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Card is a rounded, padded container with an optional title and footer.
type Card struct {
	*Container
	title  string
	footer ui.Renderable
	body   []ui.Renderable
}

// NewCard creates a card around children.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{
		Container: NewContainer().
			WithBorder(BorderVariantRounded).
			WithPadding(SymmetricSpacing(0, 1)).
			WithAppliers(func(base lipgloss.Style, theme Theme) lipgloss.Style {
				return base.BorderForeground(theme.Palette.Neutral.Muted)
			}),
		body: children,
	}
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext assembles title, body and footer before rendering.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	children := make([]ui.Renderable, 0, len(c.body)+3)
	if c.title != "" {
		children = append(children, NewHeading(c.title))
	}
	children = append(children, c.body...)
	if c.footer != nil {
		children = append(children, NewDivider().WithAppliers(Foreground(PaletteNeutral)), c.footer)
	}

	container := *c.Container
	container.layout = VStack(children...).WithGap(c.Container.layout.gap)
	return container.ViewWithContext(ctx)
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter sets a footer rendered below a divider.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// Add appends body children.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.body = append(c.body, children...)
	return c
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}

// EventSummary is the data shown by an EventCard.
type EventSummary struct {
	Title    string
	Date     string
	Venue    string
	Category Category
}

// EventCard renders an event listing: category badge, title, date and venue.
func EventCard(event EventSummary) *Card {
	meta := CaptionText(event.Date + " · " + event.Venue)
	return NewCard(
		CategoryBadge(event.Category),
		NewHeading(event.Title).WithAppliers(CategoryAccent(event.Category)),
		meta,
	)
}
