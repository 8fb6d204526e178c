package components

import (
	"strings"

	"github.com/alexisbeaulieu97/eventui/internal/nav"
	"github.com/alexisbeaulieu97/eventui/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultNavHeaderWidth = 72
	navLinkGap            = 2

	menuIcon  = "☰"
	closeIcon = "✕"
	backIcon  = "‹"
	pinIcon   = "⌖"
)

// NavHeader paints a resolved nav.RenderPlan. It makes no layout decisions
// of its own: every section it draws is one the plan asked for.
type NavHeader struct {
	BaseComponent
	plan  nav.RenderPlan
	err   error
	width int
}

// NewNavHeader creates a header for plan.
func NewNavHeader(plan nav.RenderPlan) *NavHeader {
	return &NavHeader{BaseComponent: NewBaseComponent(), plan: plan}
}

// NavHeaderFor creates a header from the result of nav.Resolve or
// nav.Pipeline. A non-nil err renders an error alert instead of the header.
func NavHeaderFor(plan nav.RenderPlan, err error) *NavHeader {
	h := NewNavHeader(plan)
	h.err = err
	return h
}

// View renders the header.
func (h *NavHeader) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header row and, for the expanded mobile
// variant, the vertical link list below it.
func (h *NavHeader) ViewWithContext(ctx RenderContext) string {
	width := h.resolveWidth(ctx)
	if h.err != nil {
		return ErrorAlert(h.err.Error()).
			WithTitle("Navigation unavailable").
			ViewWithContext(ctx.WithConstraints(WithMaxWidth(width)))
	}

	style := Style(ctx.Theme, h.ComputeStyle(ctx.Theme),
		Background(PaletteSurface),
		func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.BorderStyle(theme.Borders.Normal).
				BorderBottom(true).
				BorderForeground(theme.Palette.Neutral.Base)
		},
	).Width(width)

	rows := []string{h.row(ctx, width)}
	if h.plan.NavLayout == nav.NavLayoutVertical {
		rows = append(rows, h.linkList(ctx)...)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (h *NavHeader) resolveWidth(ctx RenderContext) int {
	switch {
	case h.width > 0:
		return h.width
	case ctx.Constraints.MaxWidth > 0:
		return ctx.Constraints.MaxWidth
	default:
		return defaultNavHeaderWidth
	}
}

// row lays out the leading sections on the left and the trailing ones on
// the right, with the horizontal link bar between them.
func (h *NavHeader) row(ctx RenderContext, width int) string {
	leading := h.leading(ctx)
	trailing := h.trailing(ctx)

	if h.plan.NavLayout == nav.NavLayoutHorizontal {
		if bar := h.linkBar(ctx); bar != "" {
			leading = append(leading, bar)
		}
	}

	left := strings.Join(leading, HorizontalSpacer(navLinkGap).View())
	right := strings.Join(trailing, " ")
	fill := width - lipgloss.Width(left) - lipgloss.Width(right)
	if fill < 1 {
		fill = 1
	}
	return left + HorizontalSpacer(fill).View() + right
}

func (h *NavHeader) leading(ctx RenderContext) []string {
	var parts []string
	content := h.plan.Content

	if h.plan.ShowBackControl {
		parts = append(parts, GhostButton(backIcon+" "+content.BackLabel).ViewWithContext(ctx))
	}
	if content.Title != "" {
		parts = append(parts, NewHeading(content.Title).ViewWithContext(ctx))
	}
	if h.plan.ShowLocationControl {
		parts = append(parts, NewText(pinIcon+" "+content.LocationLabel).
			WithAppliers(Foreground(PalettePrimary)).
			ViewWithContext(ctx))
	}
	return parts
}

func (h *NavHeader) trailing(ctx RenderContext) []string {
	var parts []string

	if h.plan.ShowPrimaryAction {
		button := PrimaryButton(h.plan.Content.PrimaryActionLabel)
		if h.plan.PrimaryActionVariant == nav.ActionNeutral {
			button.WithVariant(ButtonVariantNeutral)
		}
		parts = append(parts, button.ViewWithContext(ctx))
	}
	if h.plan.ActionSlot != nil {
		if view := renderChild(h.plan.ActionSlot, ctx); view != "" {
			parts = append(parts, view)
		}
	}
	if h.plan.ShowMenuToggle {
		icon := menuIcon
		if h.plan.MenuToggleIcon == nav.ToggleClose {
			icon = closeIcon
		}
		parts = append(parts, GhostButton(icon).ViewWithContext(ctx))
	}
	return parts
}

func (h *NavHeader) linkBar(ctx RenderContext) string {
	labels := h.plan.LinkLabels()
	if len(labels) == 0 {
		return ""
	}
	views := make([]string, 0, len(labels))
	for _, label := range labels {
		views = append(views, NewText(label).ViewWithContext(ctx))
	}
	return strings.Join(views, HorizontalSpacer(navLinkGap).View())
}

func (h *NavHeader) linkList(ctx RenderContext) []string {
	labels := h.plan.LinkLabels()
	rows := make([]string, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, NewText(label).
			WithAppliers(Typography(TypographyLabel), PaddingX(SpacingXS)).
			ViewWithContext(ctx))
	}
	return rows
}

// WithWidth fixes the header width in cells.
func (h *NavHeader) WithWidth(width int) *NavHeader {
	h.width = width
	return h
}

// WithAppliers applies theme-based style modifiers.
func (h *NavHeader) WithAppliers(appliers ...StyleFunc) *NavHeader {
	h.AddAppliers(appliers...)
	return h
}

// Plan returns the painted plan.
func (h *NavHeader) Plan() nav.RenderPlan {
	return h.plan
}

// Err returns the resolution error, if any.
func (h *NavHeader) Err() error {
	return h.err
}

var _ ui.Renderable = (*NavHeader)(nil)
