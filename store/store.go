// Package store persists routines, settings and the workout history
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/homegym/spotter/internal/apperr"
	"github.com/homegym/spotter/internal/models"
)

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// ErrNotFound is returned when a routine, a day or a record does not exist.
var ErrNotFound = errors.New("not found")

var (
	errInstanceRunning = &apperr.Error{
		Message: "is spotter already running? Only one instance can be active at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %s",
	}

	errRoutineName = &apperr.Error{
		Message: "a routine needs a name",
	}
)

// Repository is the persistence interface used by the CLI and the session
// engine.
type Repository interface {
	// ListRoutines returns every stored routine.
	ListRoutines(ctx context.Context) ([]models.Routine, error)
	GetRoutine(ctx context.Context, id string) (*models.Routine, error)
	// SaveRoutine creates the routine or overwrites it if it exists already.
	// An ID is assigned when r has none.
	SaveRoutine(ctx context.Context, r *models.Routine) error
	DeleteRoutine(ctx context.Context, id string) error
	// GetPlan builds the training plan for one day of a routine.
	GetPlan(ctx context.Context, routineID string, dayIndex int) (models.TrainingPlan, error)
	// SaveCompletion appends rec to the history and makes it the last
	// workout in one transaction.
	SaveCompletion(ctx context.Context, rec models.CompletionRecord) error
	LastWorkout(ctx context.Context) (*models.CompletionRecord, error)
	// History returns the records completed within [since, until], oldest
	// first. A zero until means no upper bound.
	History(ctx context.Context, since, until time.Time) ([]models.CompletionRecord, error)
	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, s models.Settings) error
	Close() error
}

// Open connects to the store selected by driver.
func Open(ctx context.Context, driver, path string) (Repository, error) {
	switch driver {
	case DriverBolt, "":
		c, err := NewClient(path)
		if err != nil {
			return nil, err
		}

		return c, nil
	case DriverSQLite:
		s, err := NewSQLite(ctx, path)
		if err != nil {
			return nil, err
		}

		return s, nil
	}

	return nil, errUnknownDriver.Fmt(driver)
}

// prepareRoutine validates r and fills in its ID and timestamps.
func prepareRoutine(r *models.Routine, now time.Time) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errRoutineName
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}

	r.UpdatedAt = now

	return nil
}

func planFor(r *models.Routine, dayIndex int) (models.TrainingPlan, error) {
	plan, ok := r.Plan(dayIndex)
	if !ok {
		return models.TrainingPlan{}, fmt.Errorf(
			"routine %q has no day %d: %w",
			r.Name,
			dayIndex+1,
			ErrNotFound,
		)
	}

	return plan, nil
}

func inRange(t, since, until time.Time) bool {
	if t.Before(since) {
		return false
	}

	return until.IsZero() || !t.After(until)
}
