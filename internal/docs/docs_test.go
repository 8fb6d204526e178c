package docs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/eventui/internal/nav"
	"github.com/alexisbeaulieu97/eventui/internal/stories"
	"github.com/alexisbeaulieu97/eventui/internal/ui/components"
	eventerrors "github.com/alexisbeaulieu97/eventui/pkg/errors"
)

func plainRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(Options{Theme: components.LightTheme(), Width: 72, Plain: true})
	require.NoError(t, err)
	return r
}

func defaultSite(t *testing.T) *Site {
	t.Helper()
	doc, err := stories.Default()
	require.NoError(t, err)
	return NewSite(doc, plainRenderer(t))
}

func TestDecisionRowsCoverEveryAllowedCombination(t *testing.T) {
	rows := DecisionRows()
	require.Len(t, rows, 16)

	variants := make(map[nav.Variant]int)
	failures := 0
	for _, row := range rows {
		if row.Err != nil {
			assert.ErrorIs(t, row.Err, nav.ErrUnsupportedVariant, "%+v", row.Input)
			failures++
			continue
		}
		variants[row.Plan.Variant]++
	}

	assert.Equal(t, 7, failures)
	for _, v := range nav.Variants() {
		assert.Positive(t, variants[v], v.String())
	}
	assert.Equal(t, 3, variants[nav.VariantAppDetail])
}

func TestDecisionTableMarkdown(t *testing.T) {
	table := DecisionTable()

	assert.Contains(t, table, "| web | big | default | web-desktop | yes | 3 horizontal | primary |")
	assert.Contains(t, table, "| web | big | neutral | web-desktop | yes | 3 horizontal | neutral |")
	assert.Contains(t, table, "| web | small | expanded | web-mobile-expanded |  | 5 vertical |  | close |")
	assert.Contains(t, table, "| app | big | default | `UNSUPPORTED_VARIANT` |")
	assert.Equal(t, 18, strings.Count(table, "\n"))
}

func TestPlanTable(t *testing.T) {
	plan, err := nav.Pipeline(nav.AxisInput{Context: nav.ContextApp, Size: nav.SizeSmall, State: nav.StateOrganiser}, nil, nav.Callbacks{})
	require.NoError(t, err)

	table := PlanTable(plan)
	assert.Contains(t, table, "| Axis | `app/small/organiser` |")
	assert.Contains(t, table, "| back-control | BackButton |")
	assert.Contains(t, table, "| Links | - |")
	assert.Contains(t, table, "| Title | Organiser |")
}

func TestTabTable(t *testing.T) {
	table := TabTable()
	assert.Contains(t, table, "| Home | 12 | 1 |")
	assert.Contains(t, table, "| Profile | 264 | 22 |")
}

func TestTokenTable(t *testing.T) {
	table := TokenTable(components.DarkTheme())
	assert.Contains(t, table, "## Palette")
	assert.Contains(t, table, "## Spacing")
	assert.Contains(t, table, "| `spacing.xl` | 6 |")
	assert.Contains(t, table, "| `palette.primary.base` | #8b5cf6 |")
}

func TestRenderStoryNavHeader(t *testing.T) {
	doc, err := stories.Default()
	require.NoError(t, err)
	story, ok := doc.Find("web-desktop")
	require.True(t, ok)

	page, err := plainRenderer(t).RenderStory(story)
	require.NoError(t, err)

	assert.Equal(t, "web-desktop", page.ID)
	assert.NoError(t, page.Err)
	assert.False(t, page.Failed())
	assert.Contains(t, page.Body, "Web desktop")
	assert.Contains(t, page.Body, nav.DefaultLocationLabel)
	assert.Contains(t, page.Body, "LocationPicker")
	assert.NotContains(t, page.Body, "\x1b[")
	assert.Less(t, strings.Index(page.Body, nav.DefaultLocationLabel), strings.Index(page.Body, "LocationPicker"))
}

func TestRenderStoryExpectedError(t *testing.T) {
	doc, err := stories.Default()
	require.NoError(t, err)
	story, ok := doc.Find("app-big-unsupported")
	require.True(t, ok)

	page, err := plainRenderer(t).RenderStory(story)
	require.NoError(t, err)

	assert.ErrorIs(t, page.Err, nav.ErrUnsupportedVariant)
	assert.True(t, page.Expected)
	assert.False(t, page.Failed())
	assert.Contains(t, page.Body, "Navigation unavailable")
}

func TestRenderStoryMissingExpectedError(t *testing.T) {
	story := stories.Story{
		ID:          "web-ok",
		Title:       "Web",
		Kind:        stories.KindNavHeader,
		ExpectError: string(nav.ErrCodeUnsupportedVariant),
	}

	page, err := plainRenderer(t).RenderStory(story)
	require.NoError(t, err)
	assert.True(t, page.Failed())

	var storyErr *eventerrors.StoryError
	assert.ErrorAs(t, page.Err, &storyErr)
}

func TestRenderStoryTabBarAndCard(t *testing.T) {
	r := plainRenderer(t)

	page, err := r.RenderStory(stories.Story{ID: "tabs", Title: "Tabs", Kind: stories.KindTabBar, ActiveTab: "events"})
	require.NoError(t, err)
	assert.Contains(t, page.Body, "Home")
	assert.Contains(t, page.Body, "264")

	page, err = r.RenderStory(stories.Story{
		ID: "card", Title: "Card", Kind: stories.KindEventCard,
		Event: &stories.Event{Title: "Go Meetup", Date: "Thu", Venue: "Campus", Category: "tech"},
	})
	require.NoError(t, err)
	assert.Contains(t, page.Body, "TECH")
	assert.Contains(t, page.Body, "Go Meetup")
}

func TestSitePagesAndSummary(t *testing.T) {
	site := defaultSite(t)

	pages, err := site.Pages()
	require.NoError(t, err)
	require.NotEmpty(t, pages)
	assert.Equal(t, IndexPageID, pages[0].ID)
	assert.Contains(t, pages[0].Body, "web-mobile-expanded")

	var buf bytes.Buffer
	summary, err := site.Write(&buf, pages)
	require.NoError(t, err)
	assert.Equal(t, len(pages), summary.Rendered)
	assert.Equal(t, 1, summary.Expected)
	assert.Zero(t, summary.Failed)

	selected, err := site.Pages("app-event")
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Contains(t, selected[0].Body, "Share")

	_, err = site.Pages("nope")
	assert.ErrorContains(t, err, "unknown story")
}

func TestGoldenRoundTrip(t *testing.T) {
	site := defaultSite(t)
	pages, err := site.Pages()
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "golden")
	require.NoError(t, UpdateGolden(dir, pages))
	require.NoError(t, CheckGolden(dir, pages))

	target := GoldenPath(dir, pages[1])
	require.NoError(t, os.WriteFile(target, []byte("stale\n"), 0o644))
	require.NoError(t, os.Remove(GoldenPath(dir, pages[2])))

	err = CheckGolden(dir, pages)
	require.Error(t, err)

	var snapErr *eventerrors.SnapshotError
	require.ErrorAs(t, err, &snapErr)
	assert.Equal(t, target, snapErr.Path)
	assert.Contains(t, snapErr.Diff, "-stale")
	assert.Contains(t, err.Error(), GoldenPath(dir, pages[2]))
	assert.Contains(t, err.Error(), "-stale")
}

func TestRendererIsDeterministic(t *testing.T) {
	a, err := defaultSite(t).Pages()
	require.NoError(t, err)
	b, err := defaultSite(t).Pages()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
