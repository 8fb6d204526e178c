// Package components is the theme-aware terminal component library built on
// lipgloss.
//
// Themes are immutable token sets passed explicitly through RenderContext:
//
//	ctx := components.NewContext(components.DarkTheme()).WithConstraints(components.WithMaxWidth(80))
//	out := components.NewNavHeader(plan).ViewWithContext(ctx)
//
// View() renders with DefaultContext.
//
// Components accept StyleFunc modifiers through WithAppliers. Modifiers read
// tokens from the theme (Background, Foreground, CategoryFill, Padding,
// Typography, Border) so a component never names a colour directly.
//
// NavHeader and TabBar are painters: they draw a nav.RenderPlan or a
// nav.TabSelection exactly as resolved and make no layout decisions of
// their own.
package components
