package components

import (
	"github.com/alexisbeaulieu97/eventui/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Container is a box with optional border and padding around a vertical
// stack of children. Card and Panel build on it.
type Container struct {
	BaseComponent
	layout  *Stack
	border  BorderVariant
	padding Spacing
	width   int
}

// NewContainer creates a borderless container.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
		border:        BorderVariantNone,
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container. Borders and padding still render
// when there are no children.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if c.border != BorderVariantNone {
		style = style.BorderStyle(BorderForVariant(ctx.Theme, c.border))
	}
	style = c.padding.applyPadding(style)

	innerCtx := ctx
	if c.width > 0 {
		style = style.Width(c.width)
		inner := c.width - c.padding.Horizontal()
		if inner > 0 {
			innerCtx = ctx.WithConstraints(WithMaxWidth(inner))
		}
	}

	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(innerCtx)
	}
	return style.Render(content)
}

// WithBorder sets the border variant.
func (c *Container) WithBorder(border BorderVariant) *Container {
	c.border = border
	return c
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithWidth fixes the content width including padding.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithStyle sets the container style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}
