// Package docs renders the showcase site: story pages with live components,
// Markdown tables generated from the resolver, and golden snapshots.
package docs

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/eventui/internal/ui"
	"github.com/alexisbeaulieu97/eventui/internal/ui/components"
)

const defaultWidth = 72

// Options configures a Renderer.
type Options struct {
	Theme components.Theme
	Width int
	// Plain strips colour and uses glamour's notty style. Golden snapshots
	// are always rendered plain.
	Plain bool
}

// Renderer turns Markdown and components into terminal text.
type Renderer struct {
	theme    components.Theme
	width    int
	plain    bool
	markdown *glamour.TermRenderer
}

// NewRenderer builds a Renderer with a glamour style matching the theme.
func NewRenderer(opts Options) (*Renderer, error) {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	theme := opts.Theme
	if theme.Variants == nil {
		theme = components.DefaultTheme()
	}

	style := theme.Mode.String()
	if opts.Plain {
		style = "notty"
	}

	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	return &Renderer{theme: theme, width: width, plain: opts.Plain, markdown: md}, nil
}

// Markdown renders md.
func (r *Renderer) Markdown(md string) (string, error) {
	out, err := r.markdown.Render(md)
	if err != nil {
		return "", err
	}
	return r.finish(out), nil
}

// Component renders c with the renderer's theme and width.
func (r *Renderer) Component(c ui.Renderable) string {
	ctx := components.NewContext(r.theme).WithConstraints(components.WithMaxWidth(r.width))
	if contextual, ok := c.(components.ContextualRenderable); ok {
		return r.finish(contextual.ViewWithContext(ctx))
	}
	return r.finish(c.View())
}

// Width returns the content width.
func (r *Renderer) Width() int {
	return r.width
}

// finish strips colour in plain mode and trailing spaces on every line so
// snapshots are stable across terminals.
func (r *Renderer) finish(s string) string {
	if r.plain {
		s = ansi.Strip(s)
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
