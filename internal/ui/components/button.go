package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button is a labelled action. Buttons are visual only; the owning
// component decides what happens on activation.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	active   bool
}

// NewButton creates a primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	if b.disabled {
		style = style.Faint(true)
	}
	if b.active {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive sets the active state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// NeutralButton creates a neutral button.
func NeutralButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantNeutral)
}

// GhostButton creates a borderless text button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}

// DangerButton creates a destructive action button.
func DangerButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantDanger)
}
