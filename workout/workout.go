// Package workout starts sessions from stored routines
package workout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/homegym/spotter/internal/models"
	"github.com/homegym/spotter/session"
)

// Repository is the part of the store a workout needs.
type Repository interface {
	GetPlan(ctx context.Context, routineID string, dayIndex int) (models.TrainingPlan, error)
	SaveCompletion(ctx context.Context, rec models.CompletionRecord) error
}

// Options are the per-session settings resolved from the configuration.
type Options struct {
	Cues        session.Cuer
	Now         func() time.Time
	Rest        models.RestConfig
	CuesEnabled bool
}

// Service creates session engines for routine days.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New returns a Service that reads plans from repo and records completed
// sessions in it.
func New(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		repo: repo,
		log:  logger,
	}
}

// Begin resolves the plan of the given routine day and starts a session for
// it. An empty day fails with session.ErrEmptyPlan before any session state
// is shown.
func (s *Service) Begin(
	ctx context.Context,
	routineID string,
	dayIndex int,
	opts Options,
) (*session.Engine, error) {
	plan, err := s.repo.GetPlan(ctx, routineID, dayIndex)
	if err != nil {
		return nil, fmt.Errorf("loading workout plan: %w", err)
	}

	e := session.New(plan, session.Options{
		Rest:        opts.Rest,
		CuesEnabled: opts.CuesEnabled,
		Cues:        opts.Cues,
		Recorder:    s.repo,
		Now:         opts.Now,
		Logger:      s.log.With(slog.String("routine_id", routineID)),
	})

	if err := e.Start(); err != nil {
		return nil, err
	}

	return e, nil
}
