package docs

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/eventui/internal/stories"
	"github.com/alexisbeaulieu97/eventui/internal/ui/components"
)

// IndexPageID is the id of the generated overview page.
const IndexPageID = "index"

// Summary counts rendered pages.
type Summary struct {
	Rendered int
	Expected int
	Failed   int
}

// Site renders a story document.
type Site struct {
	doc      *stories.Document
	renderer *Renderer
}

// NewSite creates a site for doc.
func NewSite(doc *stories.Document, renderer *Renderer) *Site {
	return &Site{doc: doc, renderer: renderer}
}

// Index renders the overview page: document intro, story list, decision
// table and tab geometry.
func (s *Site) Index() (Page, error) {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", s.doc.Title)
	if s.doc.Description != "" {
		md.WriteString(s.doc.Description + "\n\n")
	}
	md.WriteString("## Stories\n\n")
	for _, story := range s.doc.Stories {
		fmt.Fprintf(&md, "- `%s` %s (%s)\n", story.ID, story.Title, story.Kind)
	}
	md.WriteString("\n## Variant decision table\n\n")
	md.WriteString(DecisionTable())
	md.WriteString("\n## Tab indicator offsets\n\n")
	md.WriteString(TabTable())

	body, err := s.renderer.Markdown(md.String())
	if err != nil {
		return Page{}, err
	}
	return Page{ID: IndexPageID, Title: s.doc.Title, Body: body}, nil
}

// Pages renders the index and the stories with the given ids, or every
// story when ids is empty. Unknown ids are an error.
func (s *Site) Pages(ids ...string) ([]Page, error) {
	selected := s.doc.Stories
	if len(ids) > 0 {
		selected = make([]stories.Story, 0, len(ids))
		for _, id := range ids {
			story, ok := s.doc.Find(id)
			if !ok {
				return nil, fmt.Errorf("unknown story %q (known: %s)", id, strings.Join(s.doc.IDs(), ", "))
			}
			selected = append(selected, story)
		}
	}

	pages := make([]Page, 0, len(selected)+1)
	if len(ids) == 0 {
		index, err := s.Index()
		if err != nil {
			return nil, err
		}
		pages = append(pages, index)
	}
	for _, story := range selected {
		page, err := s.renderer.RenderStory(story)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// Write renders pages to w separated by a divider and returns the counts.
func (s *Site) Write(w io.Writer, pages []Page) (Summary, error) {
	var summary Summary
	divider := s.renderer.Component(components.NewDivider().WithWidth(s.renderer.Width()))

	for i, page := range pages {
		if i > 0 {
			if _, err := fmt.Fprintf(w, "\n%s\n\n", divider); err != nil {
				return summary, err
			}
		}
		if _, err := io.WriteString(w, page.Body); err != nil {
			return summary, err
		}

		summary.Rendered++
		switch {
		case page.Failed():
			summary.Failed++
		case page.Expected:
			summary.Expected++
		}
	}
	return summary, nil
}

// Tokens renders the token tables for theme.
func (s *Site) Tokens(theme components.Theme) (string, error) {
	return s.renderer.Markdown(fmt.Sprintf("# Tokens (%s)\n\n%s", theme.Name, TokenTable(theme)))
}
