package stories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/eventui/internal/nav"
	eventerrors "github.com/alexisbeaulieu97/eventui/pkg/errors"
)

const minimalDoc = `
version: "1.0"
title: Test
links:
  - label: One
  - label: Two
stories:
  - id: header
    title: Header
    kind: nav-header
  - id: tabs
    title: Tabs
    kind: tab-bar
    active_tab: events
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultDocumentIsValid(t *testing.T) {
	doc, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Event navigation", doc.Title)
	assert.Contains(t, doc.IDs(), "web-desktop")
	assert.Contains(t, doc.IDs(), "app-big-unsupported")

	story, ok := doc.Find("web-mobile-expanded")
	require.True(t, ok)
	assert.True(t, story.Axis.Expanded)
	assert.Len(t, story.Links, 5, "document links are inherited")
}

func TestLoadAppliesDocumentLinks(t *testing.T) {
	doc, err := Load(writeDoc(t, minimalDoc))
	require.NoError(t, err)

	header, ok := doc.Find("header")
	require.True(t, ok)
	assert.Equal(t, []nav.NavLinkEntry{{Label: "One"}, {Label: "Two"}}, header.NavLinks())

	tabs, ok := doc.Find("tabs")
	require.True(t, ok)
	assert.Nil(t, tabs.Links, "tab bar stories do not inherit links")
	assert.Equal(t, nav.TabEvents, tabs.Tab())
}

func TestLoadOrDefault(t *testing.T) {
	doc, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Stories)

	_, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *eventerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 0, parseErr.Line)
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse([]byte("version: \"1.0\"\ntitle: [oops\n"), "bad.yaml")

	var parseErr *eventerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "bad.yaml", parseErr.Path)
	assert.Positive(t, parseErr.Line)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte(`
version: "1.0"
title: Test
stories:
  - id: header
    title: Header
    kind: nav-header
    axis:
      colour: red
`), "unknown.yaml")

	var parseErr *eventerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 9, parseErr.Line)
}

func TestValidateRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "bad version",
			body:  "version: one\ntitle: T\nstories:\n  - {id: a, title: A, kind: nav-header}\n",
			field: "version",
		},
		{
			name:  "bad story id",
			body:  "version: \"1\"\ntitle: T\nstories:\n  - {id: Bad_ID, title: A, kind: nav-header}\n",
			field: "stories[0].id",
		},
		{
			name:  "unknown axis state",
			body:  "version: \"1\"\ntitle: T\nstories:\n  - {id: a, title: A, kind: nav-header, axis: {state: hover}}\n",
			field: "stories[0].axis.state",
		},
		{
			name:  "unknown tab",
			body:  "version: \"1\"\ntitle: T\nstories:\n  - {id: a, title: A, kind: tab-bar, active_tab: settings}\n",
			field: "stories[0].activetab",
		},
		{
			name:  "unknown kind",
			body:  "version: \"1\"\ntitle: T\nstories:\n  - {id: a, title: A, kind: carousel}\n",
			field: "stories[0].kind",
		},
		{
			name:  "duplicate id",
			body:  "version: \"1\"\ntitle: T\nstories:\n  - {id: a, title: A, kind: nav-header}\n  - {id: a, title: B, kind: nav-header}\n",
			field: "stories[1].id",
		},
		{
			name:  "tab bar without tab",
			body:  "version: \"1\"\ntitle: T\nstories:\n  - {id: a, title: A, kind: tab-bar}\n",
			field: "stories[0].active_tab",
		},
		{
			name:  "event card without event",
			body:  "version: \"1\"\ntitle: T\nstories:\n  - {id: a, title: A, kind: event-card}\n",
			field: "stories[0].event",
		},
		{
			name:  "no stories",
			body:  "version: \"1\"\ntitle: T\nstories: []\n",
			field: "stories",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body), "doc.yaml")
			require.Error(t, err)

			var validationErr *eventerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidateNilDocument(t *testing.T) {
	var validationErr *eventerrors.ValidationError
	require.ErrorAs(t, Validate(nil), &validationErr)
}

func TestStoryResolveOptions(t *testing.T) {
	story := Story{
		Kind:    KindNavHeader,
		Axis:    nav.AxisInput{Context: nav.ContextApp, Size: nav.SizeSmall, State: nav.StateEvent},
		Content: Content{Title: "Rooftop Jazz", BackLabel: "Events"},
	}

	plan, err := nav.Pipeline(story.Axis, story.NavLinks(), nav.Callbacks{}, story.ResolveOptions()...)
	require.NoError(t, err)
	assert.Equal(t, "Rooftop Jazz", plan.Content.Title)
	assert.Equal(t, "Events", plan.Content.BackLabel)
	assert.Empty(t, (Story{}).ResolveOptions())
	assert.Equal(t, nav.TabHome, (Story{}).Tab())
}
