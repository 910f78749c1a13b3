package session

import (
	"errors"
	"fmt"

	"github.com/homegym/spotter/internal/models"
)

var (
	// ErrEmptyPlan is returned by Start when the plan has no exercise with at
	// least one set.
	ErrEmptyPlan = errors.New("this day has no exercises: add an exercise before starting a workout")

	// ErrInvalidTransition is matched by every InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid session transition")
)

// InvalidTransitionError reports an operation invoked in a phase that does not
// allow it.
type InvalidTransitionError struct {
	Op    string
	Phase Phase
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s while %s", ErrInvalidTransition, e.Op, e.Phase)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// SaveError reports that a completed workout could not be persisted. The
// session remains complete.
type SaveError struct {
	Err    error
	Record models.CompletionRecord
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("workout completed but could not be saved: %v", e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
