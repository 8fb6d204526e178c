// Package ui holds the minimal contracts shared by the component library and
// the code that feeds it.
package ui

// Renderable is anything that can paint itself to a terminal string.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a plain function to Renderable.
type RenderableFunc func() string

// View calls f.
func (f RenderableFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}
