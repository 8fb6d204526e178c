// Package diff renders line diffs between golden snapshots and freshly
// rendered output.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Unified renders a line diff of expected against actual in unified style.
// It returns "" when the inputs are identical. Output carries no timestamps
// so it can itself be compared in tests.
func Unified(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	diffs := lineDiffs(string(expected), string(actual))
	stats := count(diffs)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	fmt.Fprintf(&buf, "@@ -%d +%d @@\n", stats.Removed, stats.Added)

	written := 0
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			if written == maxDiffLines {
				buf.WriteString(truncateMessage + "\n")
				return buf.String()
			}
			buf.WriteString(prefix + line + "\n")
			written++
		}
	}
	return buf.String()
}

// Compare returns line statistics for expected against actual.
func Compare(expected, actual []byte) Stats {
	if bytes.Equal(expected, actual) {
		return Stats{}
	}
	return count(lineDiffs(string(expected), string(actual)))
}

func lineDiffs(expected, actual string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func count(diffs []diffmatchpatch.Diff) Stats {
	var stats Stats
	for _, d := range diffs {
		n := len(splitLines(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			stats.Removed += n
		case diffmatchpatch.DiffInsert:
			stats.Added += n
		}
	}
	return stats
}

// splitLines splits text into lines, dropping the empty tail after a
// trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
