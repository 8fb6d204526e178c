package nav

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorFormatsContext(t *testing.T) {
	t.Parallel()

	err := newUnsupportedVariantError(AxisTuple{Context: ContextApp, Size: SizeBig, State: StateDefault})
	assert.Equal(t,
		"UNSUPPORTED_VARIANT: no variant defined for axis combination (context=app, size=big, state=default)",
		err.Error())
}

func TestDomainErrorIsMatchesCode(t *testing.T) {
	t.Parallel()

	err := newInvalidStateError(ContextWeb, StateEvent)
	assert.True(t, errors.Is(err, ErrInvalidStateForContext))
	assert.False(t, errors.Is(err, ErrUnknownTab))

	wrapped := fmt.Errorf("render header: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidStateForContext))

	code, ok := CodeOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrCodeInvalidStateForContext, code)

	_, ok = CodeOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestDomainErrorWithContextClones(t *testing.T) {
	t.Parallel()

	updated := ErrUnknownTab.WithContext(map[string]interface{}{"active": "x"})
	assert.NotSame(t, ErrUnknownTab, updated)
	assert.Empty(t, ErrUnknownTab.Context)
	assert.Equal(t, "x", updated.Context["active"])
}

func TestDomainErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("validator said no")
	err := newInvalidAxisError("size", "huge", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "validator said no")

	var nilErr *DomainError
	assert.Equal(t, "<nil>", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}
