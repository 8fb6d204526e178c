package components

import (
	"github.com/alexisbeaulieu97/eventui/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Alert is a bordered notification with an icon, optional title and message.
type Alert struct {
	BaseComponent
	message string
	icon    string
	variant AlertVariant
	title   string
}

// NewAlert creates an info alert with the given message.
func NewAlert(message string) *Alert {
	return (&Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}).WithVariant(AlertVariantInfo)
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	children := make([]ui.Renderable, 0, 2)
	if a.title != "" {
		children = append(children, EmphasisText(a.title))
	}
	children = append(children, NewText(a.icon+" "+a.message))

	container := NewContainer(children...).
		WithPadding(SymmetricSpacing(0, 1)).
		WithBorder(BorderVariantNormal).
		WithAppliers(a.variantStyle, alertBorderColour(a.variant))
	if ctx.Constraints.MaxWidth > 0 {
		container.WithWidth(ctx.Constraints.MaxWidth - 2)
	}
	if a.strategy != nil {
		container.AddAppliers(a.strategy.Apply)
	}

	return container.ViewWithContext(ctx)
}

func (a *Alert) variantStyle(base lipgloss.Style, theme Theme) lipgloss.Style {
	if strategy := theme.Variants.Get(a.variant); strategy != nil {
		return strategy.Apply(base, theme)
	}
	return base
}

// WithVariant sets the alert variant and its icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	switch variant {
	case AlertVariantSuccess:
		a.icon = "✓"
	case AlertVariantWarning:
		a.icon = "⚠"
	case AlertVariantError:
		a.icon = "✗"
	default:
		a.icon = "ℹ"
	}
	return a
}

// WithIcon sets a custom icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// Variant returns the alert variant.
func (a *Alert) Variant() AlertVariant {
	return a.variant
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantInfo)
}

func alertBorderColour(variant AlertVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		switch variant {
		case AlertVariantSuccess:
			return base.BorderForeground(theme.Palette.Success.Base)
		case AlertVariantWarning:
			return base.BorderForeground(theme.Palette.Warning.Base)
		case AlertVariantError:
			return base.BorderForeground(theme.Palette.Danger.Base)
		default:
			return base.BorderForeground(theme.Palette.Info.Base)
		}
	}
}
