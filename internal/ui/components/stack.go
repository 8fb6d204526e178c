package components

import (
	"strings"

	"github.com/alexisbeaulieu97/eventui/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    CrossStart,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack. Children that render to the empty
// string are skipped so they do not consume a gap.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if s.direction == DirectionHorizontal && ctx.Constraints.MaxWidth > 0 && len(s.children) > 0 {
		available := ctx.Constraints.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			childCtx = ctx.WithConstraints(WithMaxWidth(available / len(s.children)))
		}
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}
	if ctx.Constraints.MaxWidth > 0 {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}

	if s.direction == DirectionHorizontal {
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, s.withGap(views, HorizontalSpacer(s.gap).View())...))
	}
	pos := s.crossAlign.toLipglossPosition()
	return style.Render(lipgloss.JoinVertical(pos, s.withGap(views, strings.Repeat("\n", max(s.gap-1, 0)))...))
}

// withGap interleaves spacer between views. A vertical gap of one row is
// the empty string, which JoinVertical renders as a blank line.
func (s *Stack) withGap(views []string, spacer string) []string {
	if s.gap == 0 || len(views) < 2 {
		return views
	}
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, view)
	}
	return out
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children in cells (columns for
// horizontal stacks, blank rows for vertical ones).
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = max(gap, 0)
	return s
}

// WithCrossAlign sets the cross axis alignment of a vertical stack.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
