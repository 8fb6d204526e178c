package components

import (
	"github.com/alexisbeaulieu97/eventui/internal/ui"
)

// Panel groups content into a section with a header line. It is flatter
// than Card and used for layout in the showcase and playground.
type Panel struct {
	*Container
	header ui.Renderable
	footer ui.Renderable
	body   []ui.Renderable
}

// NewPanel creates a panel around children.
func NewPanel(children ...ui.Renderable) *Panel {
	return &Panel{
		Container: NewContainer().
			WithPadding(SymmetricSpacing(0, 1)).
			WithAppliers(Background(PaletteSurface)),
		body: children,
	}
}

// View renders the panel.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders header, divider, body and footer in order.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	children := make([]ui.Renderable, 0, len(p.body)+4)
	if p.header != nil {
		children = append(children, p.header, NewDivider())
	}
	children = append(children, p.body...)
	if p.footer != nil {
		children = append(children, DashedDivider(), p.footer)
	}

	container := *p.Container
	container.layout = VStack(children...).WithGap(p.Container.layout.gap)
	return container.ViewWithContext(ctx)
}

// WithHeader sets the header, replacing any previous one.
func (p *Panel) WithHeader(header ui.Renderable) *Panel {
	p.header = header
	return p
}

// WithTitle sets a subtitle-styled header.
func (p *Panel) WithTitle(title string) *Panel {
	return p.WithHeader(NewHeading(title).WithLevel(TypographyLabel))
}

// WithFooter sets the footer.
func (p *Panel) WithFooter(footer ui.Renderable) *Panel {
	p.footer = footer
	return p
}

// Add appends body children.
func (p *Panel) Add(children ...ui.Renderable) *Panel {
	p.body = append(p.body, children...)
	return p
}

// Header returns the panel header.
func (p *Panel) Header() ui.Renderable {
	return p.header
}
