// Package errors holds the infrastructure error types shared by the story
// loader, the docs renderer and the CLI.
package errors

import (
	"fmt"
	"strings"
)

// ParseError is a story document that could not be decoded. Line is 0 when
// the decoder did not report one.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError is a story document field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StoryError is a story that loaded but could not be rendered, usually
// because its axes resolve to no variant.
type StoryError struct {
	StoryID string
	Err     error
}

// NewStoryError constructs a StoryError.
func NewStoryError(storyID string, err error) error {
	return &StoryError{StoryID: storyID, Err: err}
}

func (e *StoryError) Error() string {
	if e == nil {
		return ""
	}
	if e.StoryID != "" {
		return fmt.Sprintf("story %s: %v", e.StoryID, e.Err)
	}
	return fmt.Sprintf("story: %v", e.Err)
}

func (e *StoryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SnapshotError is a rendered page that differs from its golden file.
type SnapshotError struct {
	Path string
	Diff string
}

// NewSnapshotError constructs a SnapshotError.
func NewSnapshotError(path, diff string) error {
	return &SnapshotError{Path: path, Diff: diff}
}

func (e *SnapshotError) Error() string {
	if e == nil {
		return ""
	}
	if e.Diff == "" {
		return fmt.Sprintf("snapshot mismatch: %s", e.Path)
	}
	return fmt.Sprintf("snapshot mismatch: %s\n%s", e.Path, strings.TrimRight(e.Diff, "\n"))
}
