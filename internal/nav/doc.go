// Package nav resolves navigation header and tab bar variants.
//
// The package is a pure pipeline with no state between calls:
//
//	axis, err := nav.Normalize(nav.AxisInput{Context: nav.ContextWeb, Size: nav.SizeSmall})
//	plan, err := nav.Resolve(axis, links, nav.Callbacks{OnMenuToggle: toggle})
//
// Normalize fills defaults and rejects states that do not belong to the
// chosen context. Resolve classifies the axis into one of a closed set of
// Variants and returns a RenderPlan; combinations outside that set fail with
// ErrUnsupportedVariant instead of producing an empty header.
// IndicatorOffset places the tab bar highlight.
//
// Painting a plan is the job of the component library in internal/ui/components.
package nav
