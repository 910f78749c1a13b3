package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homegym/spotter/internal/apperr"
)

var errUnknown = &apperr.Error{Message: "unknown routine: %s"}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errUnknown.Fmt("push")

	assert.Equal(t, "unknown routine: push", err.Error())
	assert.ErrorIs(t, err, errUnknown)
}

func TestWrap(t *testing.T) {
	err := errUnknown.Fmt("legs").Wrap(io.EOF)

	assert.Equal(t, "unknown routine: legs: EOF", err.Error())
	assert.True(t, errors.Is(err, io.EOF))
	assert.ErrorIs(t, err, errUnknown)
}

func TestDistinctErrors(t *testing.T) {
	other := &apperr.Error{Message: "something else"}

	assert.False(t, errors.Is(errUnknown, other))
}
