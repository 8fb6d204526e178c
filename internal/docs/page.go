package docs

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/eventui/internal/nav"
	"github.com/alexisbeaulieu97/eventui/internal/stories"
	"github.com/alexisbeaulieu97/eventui/internal/ui"
	"github.com/alexisbeaulieu97/eventui/internal/ui/components"
	eventerrors "github.com/alexisbeaulieu97/eventui/pkg/errors"
)

// Page is one rendered story.
type Page struct {
	ID    string
	Title string
	Body  string
	// Err is the resolution error the live component hit, if any.
	Err error
	// Expected is true when Err is the error the story declares.
	Expected bool
}

// Failed reports whether the page counts as a failure.
func (p Page) Failed() bool {
	return p.Err != nil && !p.Expected
}

// Build returns the live component for story, the plan it painted (nav
// headers only) and the resolution error, if any. Components still render
// on error: they paint an error alert.
func Build(story stories.Story, width int) (ui.Renderable, *nav.RenderPlan, error) {
	switch story.Kind {
	case stories.KindNavHeader:
		cb := nav.Callbacks{OnMenuToggle: noop, OnBackClick: noop}
		if story.SignUp {
			cb.OnSignUp = noop
		}
		opts := story.ResolveOptions()
		if story.Slot != "" {
			opts = append(opts, nav.WithActionSlot(components.GhostButton(story.Slot)))
		}
		plan, err := nav.Pipeline(story.Axis, story.NavLinks(), cb, opts...)
		header := components.NavHeaderFor(plan, err).WithWidth(width)
		if err != nil {
			return header, nil, err
		}
		return header, &plan, nil

	case stories.KindTabBar:
		selection := nav.NewTabSelection(story.Tab())
		_, err := selection.Offset()
		return components.NewTabBar(selection), nil, err

	case stories.KindEventCard:
		if story.Event == nil {
			return nil, nil, fmt.Errorf("event card story %q has no event", story.ID)
		}
		category, err := components.ParseCategory(story.Event.Category)
		if err != nil {
			return nil, nil, err
		}
		return components.EventCard(components.EventSummary{
			Title:    story.Event.Title,
			Date:     story.Event.Date,
			Venue:    story.Event.Venue,
			Category: category,
		}), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown story kind %q", story.Kind)
}

// RenderStory renders heading and description, the live component, then
// the resolved plan as a table.
func (r *Renderer) RenderStory(story stories.Story) (Page, error) {
	page := Page{ID: story.ID, Title: story.Title}

	component, plan, buildErr := Build(story, r.width)
	if component == nil {
		return page, eventerrors.NewStoryError(story.ID, buildErr)
	}
	page.Err, page.Expected = classify(story, buildErr)

	intro := "# " + story.Title + "\n"
	if story.Description != "" {
		intro += "\n" + story.Description + "\n"
	}
	head, err := r.Markdown(intro)
	if err != nil {
		return page, eventerrors.NewStoryError(story.ID, err)
	}

	var spec string
	switch {
	case plan != nil:
		spec = PlanTable(*plan)
	case story.Kind == stories.KindTabBar && buildErr == nil:
		spec = TabTable()
	}
	if spec != "" {
		if spec, err = r.Markdown(spec); err != nil {
			return page, eventerrors.NewStoryError(story.ID, err)
		}
	}

	parts := []string{strings.TrimRight(head, "\n"), "", r.Component(component)}
	if spec != "" {
		parts = append(parts, strings.TrimRight(spec, "\n"))
	}
	page.Body = strings.Join(parts, "\n") + "\n"
	return page, nil
}

// classify decides whether err is the failure the story demonstrates.
func classify(story stories.Story, err error) (error, bool) {
	if story.ExpectError == "" {
		if err != nil {
			return eventerrors.NewStoryError(story.ID, err), false
		}
		return nil, false
	}
	if err == nil {
		return eventerrors.NewStoryError(story.ID,
			fmt.Errorf("expected %s but the story rendered", story.ExpectError)), false
	}
	code, _ := nav.CodeOf(err)
	if string(code) == story.ExpectError {
		return err, true
	}
	return eventerrors.NewStoryError(story.ID, err), false
}
