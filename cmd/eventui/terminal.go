package main

import (
	"io"
	"os"

	"golang.org/x/term"
)

const fallbackWidth = 72

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// renderWidth picks the configured width, then the terminal width of w,
// then fallbackWidth.
func renderWidth(configured int, w io.Writer) int {
	if configured > 0 {
		return configured
	}
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallbackWidth
}
