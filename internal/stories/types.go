// Package stories loads the showcase story document: a YAML file of live
// component examples rendered by the docs site and checked against golden
// snapshots.
package stories

import (
	"github.com/alexisbeaulieu97/eventui/internal/nav"
)

// Kind selects which component a story renders.
type Kind string

const (
	KindNavHeader Kind = "nav-header"
	KindTabBar    Kind = "tab-bar"
	KindEventCard Kind = "event-card"
)

// Document is the full story file.
type Document struct {
	Version     string  `yaml:"version" validate:"required,semver"`
	Title       string  `yaml:"title" validate:"required,min=1,max=100"`
	Description string  `yaml:"description,omitempty"`
	Width       int     `yaml:"width,omitempty" validate:"omitempty,min=28,max=200"`
	Links       []Link  `yaml:"links,omitempty" validate:"omitempty,dive"`
	Stories     []Story `yaml:"stories" validate:"required,min=1,dive"`
}

// Link is a navigation link label used by nav-header stories.
type Link struct {
	Label string `yaml:"label" validate:"required,max=40"`
}

// Story is one live example.
type Story struct {
	ID          string `yaml:"id" validate:"required,story_id"`
	Title       string `yaml:"title" validate:"required,max=100"`
	Description string `yaml:"description,omitempty"`
	Kind        Kind   `yaml:"kind" validate:"required,oneof=nav-header tab-bar event-card"`

	Axis    nav.AxisInput `yaml:"axis,omitempty"`
	Links   []Link        `yaml:"links,omitempty" validate:"omitempty,dive"`
	SignUp  bool          `yaml:"sign_up,omitempty"`
	Slot    string        `yaml:"slot,omitempty" validate:"omitempty,max=20"`
	Content Content       `yaml:"content,omitempty"`

	ActiveTab string `yaml:"active_tab,omitempty" validate:"omitempty,tab_id"`

	Event *Event `yaml:"event,omitempty"`

	// ExpectError names the nav error code a story demonstrates on purpose.
	ExpectError string `yaml:"expect_error,omitempty" validate:"omitempty,oneof=INVALID_AXIS INVALID_STATE_FOR_CONTEXT UNSUPPORTED_VARIANT UNKNOWN_TAB"`
}

// Content overrides the plan's default labels.
type Content struct {
	Title         string `yaml:"title,omitempty" validate:"omitempty,max=40"`
	LocationLabel string `yaml:"location_label,omitempty" validate:"omitempty,max=40"`
	SignUpLabel   string `yaml:"sign_up_label,omitempty" validate:"omitempty,max=20"`
	BackLabel     string `yaml:"back_label,omitempty" validate:"omitempty,max=20"`
}

// Event is the fixture for event-card stories.
type Event struct {
	Title    string `yaml:"title" validate:"required,max=60"`
	Date     string `yaml:"date" validate:"required"`
	Venue    string `yaml:"venue" validate:"required"`
	Category string `yaml:"category" validate:"required,oneof=music sport arts food tech community"`
}

// NavLinks converts the story links to resolver entries. Callers attach
// Activate handlers when they need them.
func (s Story) NavLinks() []nav.NavLinkEntry {
	if len(s.Links) == 0 {
		return nil
	}
	entries := make([]nav.NavLinkEntry, 0, len(s.Links))
	for _, link := range s.Links {
		entries = append(entries, nav.NavLinkEntry{Label: link.Label})
	}
	return entries
}

// ResolveOptions returns the content overrides as resolver options.
func (s Story) ResolveOptions() []nav.ResolveOption {
	var opts []nav.ResolveOption
	if s.Content.Title != "" {
		opts = append(opts, nav.WithTitle(s.Content.Title))
	}
	if s.Content.LocationLabel != "" {
		opts = append(opts, nav.WithLocationLabel(s.Content.LocationLabel))
	}
	if s.Content.SignUpLabel != "" {
		opts = append(opts, nav.WithPrimaryActionLabel(s.Content.SignUpLabel))
	}
	if s.Content.BackLabel != "" {
		opts = append(opts, nav.WithBackLabel(s.Content.BackLabel))
	}
	return opts
}

// Tab returns the active tab, defaulting to home.
func (s Story) Tab() nav.TabID {
	if s.ActiveTab == "" {
		return nav.TabHome
	}
	return nav.TabID(s.ActiveTab)
}

// Find returns the story with id.
func (d *Document) Find(id string) (Story, bool) {
	for _, story := range d.Stories {
		if story.ID == id {
			return story, true
		}
	}
	return Story{}, false
}

// IDs lists story ids in document order.
func (d *Document) IDs() []string {
	ids := make([]string, 0, len(d.Stories))
	for _, story := range d.Stories {
		ids = append(ids, story.ID)
	}
	return ids
}

// applyDefaults gives nav-header stories without links the document links.
func (d *Document) applyDefaults() {
	for i := range d.Stories {
		story := &d.Stories[i]
		if story.Kind == KindNavHeader && story.Links == nil && len(d.Links) > 0 {
			story.Links = append([]Link(nil), d.Links...)
		}
	}
}
