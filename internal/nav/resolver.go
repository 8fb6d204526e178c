package nav

import (
	"github.com/alexisbeaulieu97/eventui/internal/ui"
)

// Variant is one documented layout of the navigation header. The set is
// closed: Classify either returns one of these or ErrUnsupportedVariant.
type Variant int

const (
	VariantWebDesktop Variant = iota + 1
	VariantWebDesktopSignedIn
	VariantWebMobile
	VariantWebMobileExpanded
	VariantAppHome
	VariantAppDetail
)

var variantNames = map[Variant]string{
	VariantWebDesktop:         "web-desktop",
	VariantWebDesktopSignedIn: "web-desktop-signed-in",
	VariantWebMobile:          "web-mobile",
	VariantWebMobileExpanded:  "web-mobile-expanded",
	VariantAppHome:            "app-home",
	VariantAppDetail:          "app-detail",
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	return []Variant{
		VariantWebDesktop,
		VariantWebDesktopSignedIn,
		VariantWebMobile,
		VariantWebMobileExpanded,
		VariantAppHome,
		VariantAppDetail,
	}
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}

// Classify maps a normalized axis tuple onto its variant.
func Classify(axis AxisTuple) (Variant, error) {
	switch axis.Context {
	case ContextWeb:
		switch axis.Size {
		case SizeBig:
			switch axis.State {
			case StateDefault, StateNeutral:
				return VariantWebDesktop, nil
			case StateSignedIn:
				return VariantWebDesktopSignedIn, nil
			}
		case SizeSmall:
			switch axis.State {
			case StateDefault:
				return VariantWebMobile, nil
			case StateExpanded:
				return VariantWebMobileExpanded, nil
			}
		}
	case ContextApp:
		if axis.Size == SizeSmall {
			switch axis.State {
			case StateDefault:
				return VariantAppHome, nil
			case StateEvent, StateOrganiser, StateCheckout:
				return VariantAppDetail, nil
			}
		}
	}
	return 0, newUnsupportedVariantError(axis)
}

// Link caps per variant.
const (
	DesktopLinkLimit  = 3
	SignedInLinkLimit = 4
)

// NavLinkEntry is one navigation link. Insertion order is display order and
// labels need not be unique.
type NavLinkEntry struct {
	Label    string
	Activate func()
}

// Callbacks are the optional interaction hooks a caller may supply.
type Callbacks struct {
	OnSignUp     func()
	OnMenuToggle func()
	OnBackClick  func()
}

// NavLayout describes how the visible links are arranged.
type NavLayout string

const (
	NavLayoutNone       NavLayout = "none"
	NavLayoutHorizontal NavLayout = "horizontal"
	NavLayoutVertical   NavLayout = "vertical"
)

// ActionVariant is the emphasis of the primary call-to-action.
type ActionVariant string

const (
	ActionPrimary ActionVariant = "primary"
	ActionNeutral ActionVariant = "neutral"
)

// ToggleIcon is the glyph shown by the menu toggle.
type ToggleIcon string

const (
	ToggleNone  ToggleIcon = ""
	ToggleMenu  ToggleIcon = "menu"
	ToggleClose ToggleIcon = "close"
)

// Section names an optional part of the header.
type Section string

const (
	SectionLocation      Section = "location"
	SectionNavLinks      Section = "nav-links"
	SectionPrimaryAction Section = "primary-action"
	SectionMenuToggle    Section = "menu-toggle"
	SectionBackControl   Section = "back-control"
	SectionActionSlot    Section = "action-slot"
)

// Owner names the sub-component responsible for painting a section.
type Owner string

const (
	OwnerLocationPicker Owner = "LocationPicker"
	OwnerLinkBar        Owner = "LinkBar"
	OwnerLinkList       Owner = "LinkList"
	OwnerButton         Owner = "Button"
	OwnerMenuButton     Owner = "MenuButton"
	OwnerBackButton     Owner = "BackButton"
	OwnerSlot           Owner = "Slot"
)

// Content holds the text a plan supplies for its sections, with defaults
// filled in where the caller provided nothing.
type Content struct {
	Title              string
	LocationLabel      string
	PrimaryActionLabel string
	BackLabel          string
}

// Default content used when the caller supplies none.
const (
	DefaultLocationLabel      = "Choose location"
	DefaultPrimaryActionLabel = "Sign up"
	DefaultBackLabel          = "Back"
)

var detailTitles = map[InteractionState]string{
	StateEvent:     "Event",
	StateOrganiser: "Organiser",
	StateCheckout:  "Checkout",
}

// RenderPlan is the resolved description of which header sections appear.
// Plans are values; Resolve builds a fresh one on every call.
type RenderPlan struct {
	Axis    AxisTuple
	Variant Variant

	ShowLocationControl  bool
	VisibleNavLinks      []NavLinkEntry
	NavLayout            NavLayout
	ShowPrimaryAction    bool
	PrimaryActionVariant ActionVariant
	ShowMenuToggle       bool
	MenuToggleIcon       ToggleIcon
	ShowBackControl      bool
	ActionSlotAllowed    bool
	ActionSlot           ui.Renderable

	Content Content

	// Callbacks holds only the hooks whose section is shown.
	Callbacks Callbacks
}

// ResolveOption customises the optional data handed to Resolve.
type ResolveOption func(*resolveOptions)

type resolveOptions struct {
	slot    ui.Renderable
	content Content
}

// WithActionSlot supplies custom content for the app detail action slot.
// Layouts without a reserved slot drop it.
func WithActionSlot(slot ui.Renderable) ResolveOption {
	return func(o *resolveOptions) { o.slot = slot }
}

// WithTitle overrides the default header title.
func WithTitle(title string) ResolveOption {
	return func(o *resolveOptions) { o.content.Title = title }
}

// WithLocationLabel overrides the default location control label.
func WithLocationLabel(label string) ResolveOption {
	return func(o *resolveOptions) { o.content.LocationLabel = label }
}

// WithPrimaryActionLabel overrides the default call-to-action label.
func WithPrimaryActionLabel(label string) ResolveOption {
	return func(o *resolveOptions) { o.content.PrimaryActionLabel = label }
}

// WithBackLabel overrides the default back control label.
func WithBackLabel(label string) ResolveOption {
	return func(o *resolveOptions) { o.content.BackLabel = label }
}

// Resolve computes the RenderPlan for axis. It holds no memory of previous
// calls: identical inputs always yield equal plans.
func Resolve(axis AxisTuple, links []NavLinkEntry, cb Callbacks, opts ...ResolveOption) (RenderPlan, error) {
	if err := axis.validate(); err != nil {
		return RenderPlan{}, err
	}

	variant, err := Classify(axis)
	if err != nil {
		return RenderPlan{}, err
	}

	var o resolveOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	plan := RenderPlan{
		Axis:                 axis,
		Variant:              variant,
		NavLayout:            NavLayoutNone,
		PrimaryActionVariant: ActionPrimary,
	}
	if axis.State == StateNeutral {
		plan.PrimaryActionVariant = ActionNeutral
	}

	switch variant {
	case VariantWebDesktop:
		plan.ShowLocationControl = true
		plan.VisibleNavLinks = firstN(links, DesktopLinkLimit)
		plan.NavLayout = NavLayoutHorizontal
		plan.ShowPrimaryAction = cb.OnSignUp != nil
	case VariantWebDesktopSignedIn:
		plan.ShowLocationControl = true
		plan.VisibleNavLinks = firstN(links, SignedInLinkLimit)
		plan.NavLayout = NavLayoutHorizontal
	case VariantWebMobile:
		plan.ShowMenuToggle = true
		plan.MenuToggleIcon = ToggleMenu
	case VariantWebMobileExpanded:
		plan.VisibleNavLinks = firstN(links, len(links))
		plan.NavLayout = NavLayoutVertical
		plan.ShowMenuToggle = true
		plan.MenuToggleIcon = ToggleClose
	case VariantAppHome:
		plan.ShowLocationControl = true
	case VariantAppDetail:
		plan.ShowBackControl = true
		plan.ActionSlotAllowed = axis.State == StateEvent || axis.State == StateOrganiser
	}

	if len(plan.VisibleNavLinks) == 0 {
		plan.VisibleNavLinks = nil
		plan.NavLayout = NavLayoutNone
	}
	if plan.ActionSlotAllowed {
		plan.ActionSlot = o.slot
	}

	if plan.ShowPrimaryAction {
		plan.Callbacks.OnSignUp = cb.OnSignUp
	}
	if plan.ShowMenuToggle {
		plan.Callbacks.OnMenuToggle = cb.OnMenuToggle
	}
	if plan.ShowBackControl {
		plan.Callbacks.OnBackClick = cb.OnBackClick
	}

	plan.Content = resolveContent(plan, o.content)
	return plan, nil
}

// Pipeline normalizes in and resolves the resulting axis in one step.
func Pipeline(in AxisInput, links []NavLinkEntry, cb Callbacks, opts ...ResolveOption) (RenderPlan, error) {
	axis, err := Normalize(in)
	if err != nil {
		return RenderPlan{}, err
	}
	return Resolve(axis, links, cb, opts...)
}

func resolveContent(plan RenderPlan, supplied Content) Content {
	var content Content

	content.Title = supplied.Title
	if content.Title == "" && plan.Variant == VariantAppDetail {
		content.Title = detailTitles[plan.Axis.State]
	}
	if plan.ShowLocationControl {
		content.LocationLabel = orDefault(supplied.LocationLabel, DefaultLocationLabel)
	}
	if plan.ShowPrimaryAction {
		content.PrimaryActionLabel = orDefault(supplied.PrimaryActionLabel, DefaultPrimaryActionLabel)
	}
	if plan.ShowBackControl {
		content.BackLabel = orDefault(supplied.BackLabel, DefaultBackLabel)
	}
	return content
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// firstN copies at most n links so the plan never aliases the caller's slice.
func firstN(links []NavLinkEntry, n int) []NavLinkEntry {
	if n > len(links) {
		n = len(links)
	}
	if n <= 0 {
		return nil
	}
	out := make([]NavLinkEntry, n)
	copy(out, links[:n])
	return out
}

// Sections returns the sections present in the plan in paint order.
func (p RenderPlan) Sections() []Section {
	var sections []Section
	if p.ShowBackControl {
		sections = append(sections, SectionBackControl)
	}
	if p.ShowLocationControl {
		sections = append(sections, SectionLocation)
	}
	if len(p.VisibleNavLinks) > 0 {
		sections = append(sections, SectionNavLinks)
	}
	if p.ShowPrimaryAction {
		sections = append(sections, SectionPrimaryAction)
	}
	if p.ActionSlot != nil {
		sections = append(sections, SectionActionSlot)
	}
	if p.ShowMenuToggle {
		sections = append(sections, SectionMenuToggle)
	}
	return sections
}

// Owner returns the sub-component that paints section, or false when the
// section is absent from the plan.
func (p RenderPlan) Owner(section Section) (Owner, bool) {
	for _, s := range p.Sections() {
		if s != section {
			continue
		}
		switch section {
		case SectionLocation:
			return OwnerLocationPicker, true
		case SectionNavLinks:
			if p.NavLayout == NavLayoutVertical {
				return OwnerLinkList, true
			}
			return OwnerLinkBar, true
		case SectionPrimaryAction:
			return OwnerButton, true
		case SectionMenuToggle:
			return OwnerMenuButton, true
		case SectionBackControl:
			return OwnerBackButton, true
		case SectionActionSlot:
			return OwnerSlot, true
		}
	}
	return "", false
}

// Trigger invokes the callback behind section once and reports whether one ran.
func (p RenderPlan) Trigger(section Section) bool {
	var fn func()
	switch section {
	case SectionPrimaryAction:
		fn = p.Callbacks.OnSignUp
	case SectionMenuToggle:
		fn = p.Callbacks.OnMenuToggle
	case SectionBackControl:
		fn = p.Callbacks.OnBackClick
	}
	if fn == nil {
		return false
	}
	fn()
	return true
}

// ActivateLink invokes the visible link at index and reports whether it ran.
func (p RenderPlan) ActivateLink(index int) bool {
	if index < 0 || index >= len(p.VisibleNavLinks) {
		return false
	}
	fn := p.VisibleNavLinks[index].Activate
	if fn == nil {
		return false
	}
	fn()
	return true
}

// LinkLabels returns the labels of the visible links in order.
func (p RenderPlan) LinkLabels() []string {
	labels := make([]string, 0, len(p.VisibleNavLinks))
	for _, link := range p.VisibleNavLinks {
		labels = append(labels, link.Label)
	}
	return labels
}
