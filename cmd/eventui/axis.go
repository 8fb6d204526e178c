package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/eventui/internal/nav"
	"github.com/alexisbeaulieu97/eventui/internal/stories"
)

// axisFlags are the raw axis values shared by resolve and play.
type axisFlags struct {
	context  string
	size     string
	state    string
	expanded bool
}

func (f *axisFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.context, "context", "", "Navigation context: web or app (default web)")
	cmd.Flags().StringVar(&f.size, "size", "", "Size class: big or small (default big)")
	cmd.Flags().StringVar(&f.state, "state", "", "Interaction state (default default)")
	cmd.Flags().BoolVar(&f.expanded, "expanded", false, "Open the mobile menu (web, small only)")
}

// input parses the flags. Unknown values surface as INVALID_AXIS.
func (f *axisFlags) input() (nav.AxisInput, error) {
	ctx, err := nav.ParseContext(f.context)
	if err != nil {
		return nav.AxisInput{}, err
	}
	size, err := nav.ParseSize(f.size)
	if err != nil {
		return nav.AxisInput{}, err
	}
	state, err := nav.ParseState(f.state)
	if err != nil {
		return nav.AxisInput{}, err
	}
	return nav.AxisInput{Context: ctx, Size: size, State: state, Expanded: f.expanded}, nil
}

// axisSuggestion explains how to fix a nav error.
func axisSuggestion(in nav.AxisInput, err error) string {
	code, _ := nav.CodeOf(err)
	switch code {
	case nav.ErrCodeInvalidStateForContext:
		ctx := in.Context
		if ctx == "" {
			ctx = nav.ContextWeb
		}
		return fmt.Sprintf("Allowed states for %s: %s.", ctx, joinStates(nav.AllowedStates(ctx)))
	case nav.ErrCodeUnsupportedVariant:
		return unsupportedSuggestion(in)
	default:
		return "Use --context web|app, --size big|small and a state from 'eventui resolve --help'."
	}
}

// unsupportedSuggestion names the nearest supported combination for an axis
// that normalizes but has no variant.
func unsupportedSuggestion(in nav.AxisInput) string {
	axis, err := nav.Normalize(in)
	if err != nil {
		return "Use --context web|app, --size big|small and a state from 'eventui resolve --help'."
	}
	switch {
	case axis.Context == nav.ContextApp && axis.Size == nav.SizeBig:
		return "The app context has no big-screen header; use --size small or --context web."
	case axis.Context == nav.ContextWeb && axis.Size == nav.SizeSmall:
		return "Small web headers only support the default state; use --state default, or --expanded to open the menu."
	case axis.Context == nav.ContextWeb && axis.State == nav.StateExpanded:
		return "Only small web headers expand; use --size small --expanded."
	default:
		return fmt.Sprintf("No header variant for %s.", axis)
	}
}

func joinStates(states []nav.InteractionState) string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// defaultLinks returns the link labels of the configured story document.
func defaultLinks(app *AppContext) ([]string, error) {
	doc, err := stories.LoadOrDefault(app.Settings.Stories)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(doc.Links))
	for _, link := range doc.Links {
		labels = append(labels, link.Label)
	}
	return labels, nil
}
