package docs

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/eventui/internal/nav"
	"github.com/alexisbeaulieu97/eventui/internal/ui/components"
)

// sampleLinks is longer than any link cap so the table shows truncation.
var sampleLinks = []nav.NavLinkEntry{
	{Label: "Discover"}, {Label: "Venues"}, {Label: "Organisers"}, {Label: "Tickets"}, {Label: "Help"},
}

func noop() {}

// DecisionRow is one axis combination and what the resolver made of it.
type DecisionRow struct {
	Input nav.AxisInput
	Plan  nav.RenderPlan
	Err   error
}

// DecisionRows resolves every context, size and allowed state with all
// callbacks wired. Rows come from the resolver itself, so the published
// table cannot drift from the code.
func DecisionRows() []DecisionRow {
	cb := nav.Callbacks{OnSignUp: noop, OnMenuToggle: noop, OnBackClick: noop}

	var rows []DecisionRow
	for _, ctx := range nav.Contexts() {
		for _, size := range nav.Sizes() {
			for _, state := range nav.AllowedStates(ctx) {
				in := nav.AxisInput{Context: ctx, Size: size, State: state}
				plan, err := nav.Pipeline(in, sampleLinks, cb, nav.WithActionSlot(components.NewText("slot")))
				rows = append(rows, DecisionRow{Input: in, Plan: plan, Err: err})
			}
		}
	}
	return rows
}

// DecisionTable renders DecisionRows as a Markdown table.
func DecisionTable() string {
	var b strings.Builder
	b.WriteString("| Context | Size | State | Variant | Location | Links | Primary | Toggle | Back | Slot |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|---|---|\n")

	for _, row := range DecisionRows() {
		in := row.Input
		if row.Err != nil {
			code, _ := nav.CodeOf(row.Err)
			fmt.Fprintf(&b, "| %s | %s | %s | `%s` | | | | | | |\n", in.Context, in.Size, in.State, code)
			continue
		}
		p := row.Plan
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			in.Context, in.Size, in.State, p.Variant,
			mark(p.ShowLocationControl),
			linkSummary(p),
			primarySummary(p),
			string(p.MenuToggleIcon),
			mark(p.ShowBackControl),
			mark(p.ActionSlotAllowed),
		)
	}
	return b.String()
}

// PlanTable describes a resolved plan as a two-column Markdown table.
func PlanTable(plan nav.RenderPlan) string {
	var b strings.Builder
	b.WriteString("| Field | Value |\n|---|---|\n")

	row := func(field, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", field, value)
	}

	row("Axis", "`"+plan.Axis.String()+"`")
	row("Variant", plan.Variant.String())
	for _, section := range plan.Sections() {
		owner, _ := plan.Owner(section)
		row(string(section), string(owner))
	}
	row("Links", strings.Join(plan.LinkLabels(), ", "))
	row("Title", plan.Content.Title)
	return b.String()
}

// TabTable lists the indicator offset of every tab in DefaultTabs.
func TabTable() string {
	var b strings.Builder
	b.WriteString("| Tab | Offset (px) | Column |\n|---|---|---|\n")
	for _, tab := range nav.DefaultTabs {
		offset, _ := nav.IndicatorOffset(nav.DefaultTabs, tab)
		fmt.Fprintf(&b, "| %s | %d | %d |\n", tab.Title(), offset, nav.CellOffset(offset))
	}
	return b.String()
}

// TokenTable renders the theme's design tokens grouped by kind.
func TokenTable(theme components.Theme) string {
	var b strings.Builder
	group := ""
	for _, token := range components.Tokens(theme) {
		if token.Group != group {
			if group != "" {
				b.WriteString("\n")
			}
			group = token.Group
			fmt.Fprintf(&b, "## %s\n\n| Token | Value |\n|---|---|\n", strings.ToUpper(group[:1])+group[1:])
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", token.Key(), token.Value)
	}
	return b.String()
}

func mark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func linkSummary(p nav.RenderPlan) string {
	if p.NavLayout == nav.NavLayoutNone {
		return ""
	}
	return fmt.Sprintf("%d %s", len(p.VisibleNavLinks), p.NavLayout)
}

func primarySummary(p nav.RenderPlan) string {
	if !p.ShowPrimaryAction {
		return ""
	}
	return string(p.PrimaryActionVariant)
}
