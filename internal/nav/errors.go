package nav

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode identifies the category of a caller contract violation.
type ErrorCode string

const (
	ErrCodeInvalidAxis            ErrorCode = "INVALID_AXIS"
	ErrCodeInvalidStateForContext ErrorCode = "INVALID_STATE_FOR_CONTEXT"
	ErrCodeUnsupportedVariant     ErrorCode = "UNSUPPORTED_VARIANT"
	ErrCodeUnknownTab             ErrorCode = "UNKNOWN_TAB"
)

// Sentinels for errors.Is comparisons. Errors returned by this package carry
// the same code plus the offending values in Context.
var (
	ErrInvalidAxis            = &DomainError{Code: ErrCodeInvalidAxis, Message: "invalid axis value"}
	ErrInvalidStateForContext = &DomainError{Code: ErrCodeInvalidStateForContext, Message: "interaction state not allowed for context"}
	ErrUnsupportedVariant     = &DomainError{Code: ErrCodeUnsupportedVariant, Message: "no variant defined for axis combination"}
	ErrUnknownTab             = &DomainError{Code: ErrCodeUnknownTab, Message: "tab not present in ordered tabs"}
)

// DomainError is a typed contract violation enriched with contextual data.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Code, e.Message)
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, e.Context[k]))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(pairs, ", "))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	if e == nil {
		return false
	}
	var domainErr *DomainError
	if !errors.As(target, &domainErr) || domainErr == nil {
		return false
	}
	return e.Code == domainErr.Code
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// CodeOf returns the ErrorCode of the first DomainError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) && domainErr != nil {
		return domainErr.Code, true
	}
	return "", false
}

func newInvalidAxisError(field string, value interface{}, cause error) *DomainError {
	err := ErrInvalidAxis.WithContext(map[string]interface{}{
		"field": field,
		"value": value,
	})
	err.Cause = cause
	return err
}

func newInvalidStateError(context ContextType, state InteractionState) *DomainError {
	return ErrInvalidStateForContext.WithContext(map[string]interface{}{
		"context": string(context),
		"state":   string(state),
	})
}

func newUnsupportedVariantError(axis AxisTuple) *DomainError {
	return ErrUnsupportedVariant.WithContext(map[string]interface{}{
		"context": string(axis.Context),
		"size":    string(axis.Size),
		"state":   string(axis.State),
	})
}

func newUnknownTabError(active TabID, ordered [TabCount]TabID) *DomainError {
	names := make([]string, 0, len(ordered))
	for _, tab := range ordered {
		names = append(names, string(tab))
	}
	return ErrUnknownTab.WithContext(map[string]interface{}{
		"active":  string(active),
		"ordered": strings.Join(names, ","),
	})
}
