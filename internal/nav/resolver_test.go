package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/eventui/internal/ui"
)

// funcPresence compares callbacks by whether they are set, since Go funcs
// are not comparable.
var funcPresence = cmp.Comparer(func(a, b func()) bool {
	return (a == nil) == (b == nil)
})

type stubSlot struct{ Text string }

func (s *stubSlot) View() string { return s.Text }

func makeLinks(labels ...string) []NavLinkEntry {
	links := make([]NavLinkEntry, 0, len(labels))
	for _, label := range labels {
		links = append(links, NavLinkEntry{Label: label, Activate: func() {}})
	}
	return links
}

func allCallbacks() Callbacks {
	return Callbacks{
		OnSignUp:     func() {},
		OnMenuToggle: func() {},
		OnBackClick:  func() {},
	}
}

func TestResolveDecisionTable(t *testing.T) {
	t.Parallel()

	links := makeLinks("Discover", "Organise", "Pricing", "Help", "Blog")

	tests := []struct {
		name           string
		axis           AxisTuple
		variant        Variant
		location       bool
		labels         []string
		layout         NavLayout
		primary        bool
		primaryVariant ActionVariant
		menu           bool
		icon           ToggleIcon
		back           bool
		slotAllowed    bool
	}{
		{
			name:           "web big default",
			axis:           AxisTuple{Context: ContextWeb, Size: SizeBig, State: StateDefault},
			variant:        VariantWebDesktop,
			location:       true,
			labels:         []string{"Discover", "Organise", "Pricing"},
			layout:         NavLayoutHorizontal,
			primary:        true,
			primaryVariant: ActionPrimary,
		},
		{
			name:           "web big neutral",
			axis:           AxisTuple{Context: ContextWeb, Size: SizeBig, State: StateNeutral},
			variant:        VariantWebDesktop,
			location:       true,
			labels:         []string{"Discover", "Organise", "Pricing"},
			layout:         NavLayoutHorizontal,
			primary:        true,
			primaryVariant: ActionNeutral,
		},
		{
			name:           "web big signed in",
			axis:           AxisTuple{Context: ContextWeb, Size: SizeBig, State: StateSignedIn},
			variant:        VariantWebDesktopSignedIn,
			location:       true,
			labels:         []string{"Discover", "Organise", "Pricing", "Help"},
			layout:         NavLayoutHorizontal,
			primaryVariant: ActionPrimary,
		},
		{
			name:           "web small default",
			axis:           AxisTuple{Context: ContextWeb, Size: SizeSmall, State: StateDefault},
			variant:        VariantWebMobile,
			labels:         []string{},
			layout:         NavLayoutNone,
			primaryVariant: ActionPrimary,
			menu:           true,
			icon:           ToggleMenu,
		},
		{
			name:           "web small expanded",
			axis:           AxisTuple{Context: ContextWeb, Size: SizeSmall, State: StateExpanded, Expanded: true},
			variant:        VariantWebMobileExpanded,
			labels:         []string{"Discover", "Organise", "Pricing", "Help", "Blog"},
			layout:         NavLayoutVertical,
			primaryVariant: ActionPrimary,
			menu:           true,
			icon:           ToggleClose,
		},
		{
			name:           "app small default",
			axis:           AxisTuple{Context: ContextApp, Size: SizeSmall, State: StateDefault},
			variant:        VariantAppHome,
			location:       true,
			labels:         []string{},
			layout:         NavLayoutNone,
			primaryVariant: ActionPrimary,
		},
		{
			name:           "app small event",
			axis:           AxisTuple{Context: ContextApp, Size: SizeSmall, State: StateEvent},
			variant:        VariantAppDetail,
			labels:         []string{},
			layout:         NavLayoutNone,
			primaryVariant: ActionPrimary,
			back:           true,
			slotAllowed:    true,
		},
		{
			name:           "app small organiser",
			axis:           AxisTuple{Context: ContextApp, Size: SizeSmall, State: StateOrganiser},
			variant:        VariantAppDetail,
			labels:         []string{},
			layout:         NavLayoutNone,
			primaryVariant: ActionPrimary,
			back:           true,
			slotAllowed:    true,
		},
		{
			name:           "app small checkout",
			axis:           AxisTuple{Context: ContextApp, Size: SizeSmall, State: StateCheckout},
			variant:        VariantAppDetail,
			labels:         []string{},
			layout:         NavLayoutNone,
			primaryVariant: ActionPrimary,
			back:           true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			plan, err := Resolve(tt.axis, links, allCallbacks())
			require.NoError(t, err)

			assert.Equal(t, tt.variant, plan.Variant)
			assert.Equal(t, tt.location, plan.ShowLocationControl)
			assert.Equal(t, tt.labels, plan.LinkLabels())
			assert.Equal(t, tt.layout, plan.NavLayout)
			assert.Equal(t, tt.primary, plan.ShowPrimaryAction)
			assert.Equal(t, tt.primaryVariant, plan.PrimaryActionVariant)
			assert.Equal(t, tt.menu, plan.ShowMenuToggle)
			assert.Equal(t, tt.icon, plan.MenuToggleIcon)
			assert.Equal(t, tt.back, plan.ShowBackControl)
			assert.Equal(t, tt.slotAllowed, plan.ActionSlotAllowed)
		})
	}
}

func TestResolvePrimaryActionRequiresSignUp(t *testing.T) {
	t.Parallel()

	axis := AxisTuple{Context: ContextWeb, Size: SizeBig, State: StateDefault}
	plan, err := Resolve(axis, makeLinks("A"), Callbacks{})
	require.NoError(t, err)

	assert.False(t, plan.ShowPrimaryAction)
	assert.Empty(t, plan.Content.PrimaryActionLabel)
	assert.False(t, plan.Trigger(SectionPrimaryAction))
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	links := makeLinks("Discover", "Organise", "Pricing", "Help")
	slot := &stubSlot{Text: "share"}

	for _, variant := range sampleAxes() {
		first, err := Resolve(variant, links, allCallbacks(), WithActionSlot(slot))
		require.NoError(t, err)
		second, err := Resolve(variant, links, allCallbacks(), WithActionSlot(slot))
		require.NoError(t, err)

		if diff := cmp.Diff(first, second, funcPresence); diff != "" {
			t.Errorf("Resolve(%s) not idempotent (-first +second):\n%s", variant, diff)
		}
	}
}

func TestResolveShortLinkListIsNotPadded(t *testing.T) {
	t.Parallel()

	axis := AxisTuple{Context: ContextWeb, Size: SizeBig, State: StateDefault}
	plan, err := Resolve(axis, makeLinks("Discover", "Organise"), Callbacks{})
	require.NoError(t, err)

	assert.Len(t, plan.VisibleNavLinks, 2)
	assert.Equal(t, []string{"Discover", "Organise"}, plan.LinkLabels())
}

func TestResolveSignedInCapsAtFour(t *testing.T) {
	t.Parallel()

	axis := AxisTuple{Context: ContextWeb, Size: SizeBig, State: StateSignedIn}
	plan, err := Resolve(axis, makeLinks("1", "2", "3", "4", "5"), Callbacks{})
	require.NoError(t, err)

	assert.Len(t, plan.VisibleNavLinks, 4)
	assert.Equal(t, []string{"1", "2", "3", "4"}, plan.LinkLabels())
}

func TestResolveDoesNotAliasCallerLinks(t *testing.T) {
	t.Parallel()

	links := makeLinks("A", "B", "C")
	plan, err := Resolve(AxisTuple{Context: ContextWeb, Size: SizeBig, State: StateDefault}, links, Callbacks{})
	require.NoError(t, err)

	links[0].Label = "changed"
	assert.Equal(t, "A", plan.VisibleNavLinks[0].Label)
}

func TestResolveUnsupportedVariants(t *testing.T) {
	t.Parallel()

	tests := []AxisTuple{
		{Context: ContextApp, Size: SizeBig, State: StateDefault},
		{Context: ContextApp, Size: SizeBig, State: StateEvent},
		{Context: ContextWeb, Size: SizeBig, State: StateExpanded},
		{Context: ContextWeb, Size: SizeSmall, State: StateNeutral},
		{Context: ContextWeb, Size: SizeSmall, State: StateSignedIn},
	}

	for _, axis := range tests {
		_, err := Resolve(axis, nil, Callbacks{})
		assert.ErrorIs(t, err, ErrUnsupportedVariant, axis.String())
	}
}

func TestResolveRejectsUnnormalizedAxis(t *testing.T) {
	t.Parallel()

	_, err := Resolve(AxisTuple{}, nil, Callbacks{})
	assert.ErrorIs(t, err, ErrInvalidAxis)

	_, err = Resolve(AxisTuple{Context: ContextApp, Size: SizeSmall, State: StateSignedIn}, nil, Callbacks{})
	assert.ErrorIs(t, err, ErrInvalidStateForContext)
}

func TestResolveActionSlot(t *testing.T) {
	t.Parallel()

	slot := &stubSlot{Text: "share"}

	tests := []struct {
		axis AxisTuple
		kept bool
	}{
		{axis: AxisTuple{Context: ContextApp, Size: SizeSmall, State: StateEvent}, kept: true},
		{axis: AxisTuple{Context: ContextApp, Size: SizeSmall, State: StateOrganiser}, kept: true},
		{axis: AxisTuple{Context: ContextApp, Size: SizeSmall, State: StateCheckout}, kept: false},
		{axis: AxisTuple{Context: ContextApp, Size: SizeSmall, State: StateDefault}, kept: false},
		{axis: AxisTuple{Context: ContextWeb, Size: SizeBig, State: StateDefault}, kept: false},
	}

	for _, tt := range tests {
		plan, err := Resolve(tt.axis, nil, Callbacks{}, WithActionSlot(slot))
		require.NoError(t, err)

		if tt.kept {
			assert.Equal(t, ui.Renderable(slot), plan.ActionSlot, tt.axis.String())
			owner, ok := plan.Owner(SectionActionSlot)
			assert.True(t, ok)
			assert.Equal(t, OwnerSlot, owner)
		} else {
			assert.Nil(t, plan.ActionSlot, tt.axis.String())
			assert.NotContains(t, plan.Sections(), SectionActionSlot)
		}
	}
}

func TestResolveLiveCallbacks(t *testing.T) {
	t.Parallel()

	var signUps, toggles, backs int
	cb := Callbacks{
		OnSignUp:     func() { signUps++ },
		OnMenuToggle: func() { toggles++ },
		OnBackClick:  func() { backs++ },
	}

	desktop, err := Resolve(AxisTuple{Context: ContextWeb, Size: SizeBig, State: StateDefault}, nil, cb)
	require.NoError(t, err)
	assert.True(t, desktop.Trigger(SectionPrimaryAction))
	assert.False(t, desktop.Trigger(SectionMenuToggle))
	assert.False(t, desktop.Trigger(SectionBackControl))

	mobile, err := Resolve(AxisTuple{Context: ContextWeb, Size: SizeSmall, State: StateDefault}, nil, cb)
	require.NoError(t, err)
	assert.True(t, mobile.Trigger(SectionMenuToggle))
	assert.False(t, mobile.Trigger(SectionPrimaryAction))

	detail, err := Resolve(AxisTuple{Context: ContextApp, Size: SizeSmall, State: StateCheckout}, nil, cb)
	require.NoError(t, err)
	assert.True(t, detail.Trigger(SectionBackControl))

	assert.Equal(t, 1, signUps)
	assert.Equal(t, 1, toggles)
	assert.Equal(t, 1, backs)
}

func TestResolveActivateLink(t *testing.T) {
	t.Parallel()

	var activated []string
	links := []NavLinkEntry{
		{Label: "A", Activate: func() { activated = append(activated, "A") }},
		{Label: "B"},
	}

	plan, err := Resolve(AxisTuple{Context: ContextWeb, Size: SizeBig, State: StateSignedIn}, links, Callbacks{})
	require.NoError(t, err)

	assert.True(t, plan.ActivateLink(0))
	assert.False(t, plan.ActivateLink(1))
	assert.False(t, plan.ActivateLink(5))
	assert.Equal(t, []string{"A"}, activated)
}

func TestResolveContentDefaults(t *testing.T) {
	t.Parallel()

	desktop, err := Resolve(AxisTuple{Context: ContextWeb, Size: SizeBig, State: StateDefault}, nil, allCallbacks())
	require.NoError(t, err)
	assert.Equal(t, DefaultLocationLabel, desktop.Content.LocationLabel)
	assert.Equal(t, DefaultPrimaryActionLabel, desktop.Content.PrimaryActionLabel)
	assert.Empty(t, desktop.Content.BackLabel)

	detail, err := Resolve(AxisTuple{Context: ContextApp, Size: SizeSmall, State: StateOrganiser}, nil, Callbacks{})
	require.NoError(t, err)
	assert.Equal(t, "Organiser", detail.Content.Title)
	assert.Equal(t, DefaultBackLabel, detail.Content.BackLabel)

	custom, err := Resolve(
		AxisTuple{Context: ContextApp, Size: SizeSmall, State: StateEvent},
		nil,
		Callbacks{},
		WithTitle("Jazz Night"),
		WithBackLabel("Events"),
		WithLocationLabel("ignored"),
	)
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night", custom.Content.Title)
	assert.Equal(t, "Events", custom.Content.BackLabel)
	assert.Empty(t, custom.Content.LocationLabel)
}

func TestRenderPlanOwners(t *testing.T) {
	t.Parallel()

	links := makeLinks("A", "B")

	desktop, err := Resolve(AxisTuple{Context: ContextWeb, Size: SizeBig, State: StateDefault}, links, allCallbacks())
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionLocation, SectionNavLinks, SectionPrimaryAction}, desktop.Sections())
	owner, ok := desktop.Owner(SectionNavLinks)
	require.True(t, ok)
	assert.Equal(t, OwnerLinkBar, owner)

	expanded, err := Resolve(AxisTuple{Context: ContextWeb, Size: SizeSmall, State: StateExpanded, Expanded: true}, links, allCallbacks())
	require.NoError(t, err)
	owner, ok = expanded.Owner(SectionNavLinks)
	require.True(t, ok)
	assert.Equal(t, OwnerLinkList, owner)

	_, ok = expanded.Owner(SectionLocation)
	assert.False(t, ok)
}

func TestPipelineNormalizesThenResolves(t *testing.T) {
	t.Parallel()

	plan, err := Pipeline(AxisInput{Size: SizeSmall, Expanded: true}, makeLinks("A"), Callbacks{})
	require.NoError(t, err)
	assert.Equal(t, VariantWebMobileExpanded, plan.Variant)

	_, err = Pipeline(AxisInput{Context: ContextApp}, nil, Callbacks{})
	assert.ErrorIs(t, err, ErrUnsupportedVariant)
}

func TestVariantString(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		assert.NotEqual(t, "unknown", v.String())
	}
	assert.Equal(t, "unknown", Variant(0).String())
}

func sampleAxes() []AxisTuple {
	return []AxisTuple{
		{Context: ContextWeb, Size: SizeBig, State: StateDefault},
		{Context: ContextWeb, Size: SizeBig, State: StateNeutral},
		{Context: ContextWeb, Size: SizeBig, State: StateSignedIn},
		{Context: ContextWeb, Size: SizeSmall, State: StateDefault},
		{Context: ContextWeb, Size: SizeSmall, State: StateExpanded, Expanded: true},
		{Context: ContextApp, Size: SizeSmall, State: StateDefault},
		{Context: ContextApp, Size: SizeSmall, State: StateEvent},
		{Context: ContextApp, Size: SizeSmall, State: StateOrganiser},
		{Context: ContextApp, Size: SizeSmall, State: StateCheckout},
	}
}
