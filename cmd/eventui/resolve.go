package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/eventui/internal/docs"
	"github.com/alexisbeaulieu97/eventui/internal/nav"
	"github.com/alexisbeaulieu97/eventui/internal/ui/components"
)

type resolveOptions struct {
	axis    axisFlags
	links   []string
	signUp  bool
	title   string
	slot    string
	output  string
	preview bool
}

func newResolveCmd(app *AppContext) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve an axis selection into a nav header plan",
		Long: `Normalize the context, size and state axes, classify them into a header
variant and print the resulting render plan. Unsupported combinations exit
non-zero with the error code.`,
		Example: `  eventui resolve --context app --size small --state event
  eventui resolve --size small --expanded --output yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, app, opts)
		},
	}

	opts.axis.register(cmd)
	cmd.Flags().StringArrayVar(&opts.links, "link", nil, "Navigation link label, repeatable (default: story document links)")
	cmd.Flags().BoolVar(&opts.signUp, "sign-up", true, "Supply a sign-up handler")
	cmd.Flags().StringVar(&opts.title, "title", "", "Header title override")
	cmd.Flags().StringVar(&opts.slot, "slot", "", "Action slot label for app detail headers")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format: text or yaml")
	cmd.Flags().BoolVar(&opts.preview, "preview", true, "Render the header below the text plan")

	return cmd
}

func runResolve(cmd *cobra.Command, app *AppContext, opts *resolveOptions) error {
	log := app.Log
	output := strings.ToLower(strings.TrimSpace(opts.output))
	if output != "text" && output != "yaml" {
		return newCommandError("resolve", "selecting output format", fmt.Errorf("unknown format %q", opts.output), "Use --output text or --output yaml.")
	}

	in, err := opts.axis.input()
	if err != nil {
		return newCommandError("resolve", "parsing axis flags", err, axisSuggestion(in, err))
	}

	labels := opts.links
	if len(labels) == 0 {
		if labels, err = defaultLinks(app); err != nil {
			return newCommandError("resolve", "loading default links", err, "Pass --link or fix the stories setting.")
		}
	}

	plan, err := resolvePlan(in, labels, opts)
	if err != nil {
		code, _ := nav.CodeOf(err)
		log.WithFields(map[string]any{"code": code, "axis": fmt.Sprintf("%+v", in)}).Error(err, "resolution failed")
		return newCommandError("resolve", "resolving header variant", err, axisSuggestion(in, err))
	}
	log.WithFields(map[string]any{"variant": plan.Variant.String()}).Debug("plan resolved")

	if output == "yaml" {
		return writePlanYAML(cmd.OutOrStdout(), plan)
	}

	out := cmd.OutOrStdout()
	writePlanText(out, plan)
	if !opts.preview {
		return nil
	}

	renderer, err := docs.NewRenderer(docs.Options{
		Theme: app.Theme,
		Width: renderWidth(app.Settings.Width, out),
		Plain: !isTerminal(out),
	})
	if err != nil {
		return err
	}
	header := components.NewNavHeader(plan).WithWidth(renderer.Width())
	fmt.Fprintf(out, "\n%s\n", renderer.Component(header))
	return nil
}

func resolvePlan(in nav.AxisInput, labels []string, opts *resolveOptions) (nav.RenderPlan, error) {
	links := make([]nav.NavLinkEntry, 0, len(labels))
	for _, label := range labels {
		links = append(links, nav.NavLinkEntry{Label: label})
	}

	cb := nav.Callbacks{OnMenuToggle: func() {}, OnBackClick: func() {}}
	if opts.signUp {
		cb.OnSignUp = func() {}
	}

	var resolveOpts []nav.ResolveOption
	if opts.title != "" {
		resolveOpts = append(resolveOpts, nav.WithTitle(opts.title))
	}
	if opts.slot != "" {
		resolveOpts = append(resolveOpts, nav.WithActionSlot(components.GhostButton(opts.slot)))
	}
	return nav.Pipeline(in, links, cb, resolveOpts...)
}

func writePlanText(w io.Writer, plan nav.RenderPlan) {
	fmt.Fprintf(w, "Variant:  %s\n", plan.Variant)
	fmt.Fprintf(w, "Axis:     %s", plan.Axis)
	if plan.Axis.Expanded {
		fmt.Fprint(w, " (expanded)")
	}
	fmt.Fprintln(w)

	sections := plan.Sections()
	names := make([]string, 0, len(sections))
	for _, section := range sections {
		owner, _ := plan.Owner(section)
		names = append(names, fmt.Sprintf("%s→%s", section, owner))
	}
	fmt.Fprintf(w, "Sections: %s\n", valueOrFallback(strings.Join(names, ", "), "(none)"))
	fmt.Fprintf(w, "Links:    %s\n", valueOrFallback(strings.Join(linkLabels(plan), ", "), "(none)"))
	if plan.Content.Title != "" {
		fmt.Fprintf(w, "Title:    %s\n", plan.Content.Title)
	}
}

type planPayload struct {
	Variant       string         `yaml:"variant"`
	Axis          nav.AxisTuple  `yaml:"axis"`
	Sections      []sectionEntry `yaml:"sections"`
	Links         []string       `yaml:"links,omitempty"`
	Layout        nav.NavLayout  `yaml:"layout"`
	PrimaryAction string         `yaml:"primary_action,omitempty"`
	MenuIcon      nav.ToggleIcon `yaml:"menu_icon,omitempty"`
	Content       contentPayload `yaml:"content"`
}

type sectionEntry struct {
	Section nav.Section `yaml:"section"`
	Owner   nav.Owner   `yaml:"owner"`
}

type contentPayload struct {
	Title         string `yaml:"title,omitempty"`
	LocationLabel string `yaml:"location_label,omitempty"`
	PrimaryLabel  string `yaml:"primary_label,omitempty"`
	BackLabel     string `yaml:"back_label,omitempty"`
}

func writePlanYAML(w io.Writer, plan nav.RenderPlan) error {
	payload := planPayload{
		Variant:  plan.Variant.String(),
		Axis:     plan.Axis,
		Links:    linkLabels(plan),
		Layout:   plan.NavLayout,
		MenuIcon: plan.MenuToggleIcon,
		Content: contentPayload{
			Title:         plan.Content.Title,
			LocationLabel: plan.Content.LocationLabel,
			PrimaryLabel:  plan.Content.PrimaryActionLabel,
			BackLabel:     plan.Content.BackLabel,
		},
	}
	if plan.ShowPrimaryAction {
		payload.PrimaryAction = string(plan.PrimaryActionVariant)
	}
	for _, section := range plan.Sections() {
		owner, _ := plan.Owner(section)
		payload.Sections = append(payload.Sections, sectionEntry{Section: section, Owner: owner})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(payload); err != nil {
		return err
	}
	return encoder.Close()
}

func linkLabels(plan nav.RenderPlan) []string {
	if len(plan.VisibleNavLinks) == 0 {
		return nil
	}
	labels := make([]string, len(plan.VisibleNavLinks))
	for i, link := range plan.VisibleNavLinks {
		labels[i] = link.Label
	}
	return labels
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
