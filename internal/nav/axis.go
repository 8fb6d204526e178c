package nav

import (
	"fmt"
	"strings"
)

// ContextType selects between the website and the mobile app shells.
type ContextType string

const (
	ContextWeb ContextType = "web"
	ContextApp ContextType = "app"
)

// SizeClass selects between the desktop and compact layouts.
type SizeClass string

const (
	SizeBig   SizeClass = "big"
	SizeSmall SizeClass = "small"
)

// InteractionState is the per-context state axis. Which values are legal
// depends on the ContextType; see AllowedStates.
type InteractionState string

const (
	StateDefault   InteractionState = "default"
	StateNeutral   InteractionState = "neutral"
	StateSignedIn  InteractionState = "signed-in"
	StateExpanded  InteractionState = "expanded"
	StateEvent     InteractionState = "event"
	StateOrganiser InteractionState = "organiser"
	StateCheckout  InteractionState = "checkout"
)

var (
	contexts = []ContextType{ContextWeb, ContextApp}
	sizes    = []SizeClass{SizeBig, SizeSmall}

	allowedStates = map[ContextType][]InteractionState{
		ContextWeb: {StateDefault, StateNeutral, StateSignedIn, StateExpanded},
		ContextApp: {StateDefault, StateEvent, StateOrganiser, StateCheckout},
	}
)

// Contexts lists every context type in declaration order.
func Contexts() []ContextType {
	return append([]ContextType(nil), contexts...)
}

// Sizes lists every size class in declaration order.
func Sizes() []SizeClass {
	return append([]SizeClass(nil), sizes...)
}

// AllowedStates returns the interaction states accepted by ctx, in display order.
func AllowedStates(ctx ContextType) []InteractionState {
	return append([]InteractionState(nil), allowedStates[ctx]...)
}

// IsValid reports whether c is a known context type.
func (c ContextType) IsValid() bool {
	_, ok := allowedStates[c]
	return ok
}

// Allows reports whether state is legal for c.
func (c ContextType) Allows(state InteractionState) bool {
	for _, s := range allowedStates[c] {
		if s == state {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a known size class.
func (s SizeClass) IsValid() bool {
	return s == SizeBig || s == SizeSmall
}

// IsValid reports whether s is a known interaction state for any context.
func (s InteractionState) IsValid() bool {
	for _, states := range allowedStates {
		for _, candidate := range states {
			if candidate == s {
				return true
			}
		}
	}
	return false
}

// AxisInput is the raw, possibly partial axis selection supplied by a caller.
// Empty fields fall back to their defaults during Normalize.
type AxisInput struct {
	Context  ContextType      `yaml:"context,omitempty" validate:"omitempty,nav_context"`
	Size     SizeClass        `yaml:"size,omitempty" validate:"omitempty,nav_size"`
	State    InteractionState `yaml:"state,omitempty" validate:"omitempty,nav_state"`
	Expanded bool             `yaml:"expanded,omitempty"`
}

// ToggleExpanded returns a copy of in with the expanded flag flipped.
func (in AxisInput) ToggleExpanded() AxisInput {
	in.Expanded = !in.Expanded
	return in
}

// AxisTuple is a fully defaulted and validated axis selection.
type AxisTuple struct {
	Context  ContextType      `yaml:"context"`
	Size     SizeClass        `yaml:"size"`
	State    InteractionState `yaml:"state"`
	Expanded bool             `yaml:"expanded"`
}

// String renders the tuple as context/size/state.
func (a AxisTuple) String() string {
	return fmt.Sprintf("%s/%s/%s", a.Context, a.Size, a.State)
}

// expandable reports whether the expanded flag has any effect on a.
func (a AxisTuple) expandable() bool {
	return a.Context == ContextWeb && a.Size == SizeSmall
}

func (a AxisTuple) validate() error {
	if !a.Context.IsValid() {
		return newInvalidAxisError("context", string(a.Context), nil)
	}
	if !a.Size.IsValid() {
		return newInvalidAxisError("size", string(a.Size), nil)
	}
	if !a.Context.Allows(a.State) {
		return newInvalidStateError(a.Context, a.State)
	}
	return nil
}

// Normalize fills defaults (web, big, default) and validates the raw input.
//
// A state that is not legal for the resolved context is rejected with
// ErrInvalidStateForContext. The expanded flag only applies to web/small,
// where it overrides the state to StateExpanded; on every other combination
// it is dropped.
func Normalize(in AxisInput) (AxisTuple, error) {
	if err := validateInput(in); err != nil {
		return AxisTuple{}, err
	}

	axis := AxisTuple{
		Context: in.Context,
		Size:    in.Size,
		State:   in.State,
	}
	if axis.Context == "" {
		axis.Context = ContextWeb
	}
	if axis.Size == "" {
		axis.Size = SizeBig
	}
	if axis.State == "" {
		axis.State = StateDefault
	}

	if !axis.Context.Allows(axis.State) {
		return AxisTuple{}, newInvalidStateError(axis.Context, axis.State)
	}

	if axis.expandable() {
		if in.Expanded {
			axis.State = StateExpanded
		}
		axis.Expanded = axis.State == StateExpanded
	}

	return axis, nil
}

// ParseContext parses a user supplied context name. The empty string yields
// the unset value so Normalize can apply its default.
func ParseContext(raw string) (ContextType, error) {
	value := ContextType(cleanToken(raw))
	if value == "" || value.IsValid() {
		return value, nil
	}
	return "", newInvalidAxisError("context", raw, nil)
}

// ParseSize parses a user supplied size class name.
func ParseSize(raw string) (SizeClass, error) {
	value := SizeClass(cleanToken(raw))
	if value == "" || value.IsValid() {
		return value, nil
	}
	return "", newInvalidAxisError("size", raw, nil)
}

// ParseState parses a user supplied interaction state name. Underscores and
// spaces are accepted in place of hyphens ("signed_in", "Signed In").
func ParseState(raw string) (InteractionState, error) {
	value := InteractionState(cleanToken(raw))
	if value == "" || value.IsValid() {
		return value, nil
	}
	if value == "signedin" {
		return StateSignedIn, nil
	}
	return "", newInvalidAxisError("state", raw, nil)
}

func cleanToken(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	return strings.NewReplacer("_", "-", " ", "-").Replace(token)
}
