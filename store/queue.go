package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/homegym/spotter/internal/models"
)

// Queue wraps a Repository and keeps completion records that failed to save.
// They are retried before the next save and on Flush.
type Queue struct {
	Repository
	log     *slog.Logger
	pending []models.CompletionRecord
	mu      sync.Mutex
}

// NewQueue returns a Queue backed by repo.
func NewQueue(repo Repository, logger *slog.Logger) *Queue {
	if logger == nil {
		logger = slog.Default()
	}

	return &Queue{
		Repository: repo,
		log:        logger,
	}
}

// SaveCompletion saves rec after retrying any pending records. When the save
// fails, rec is kept for a later attempt and the error is returned.
func (q *Queue) SaveCompletion(ctx context.Context, rec models.CompletionRecord) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.flush(ctx); err != nil {
		q.log.Warn(
			"queued completion records still failing",
			slog.Int("pending", len(q.pending)),
			slog.Any("error", err),
		)
	}

	err := q.Repository.SaveCompletion(ctx, rec)
	if err != nil {
		q.pending = append(q.pending, rec)

		q.log.Warn(
			"completion record queued for retry",
			slog.String("id", rec.ID),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}

// Flush retries every pending record. Records that still fail stay queued and
// their errors are joined.
func (q *Queue) Flush(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.flush(ctx)
}

// Pending returns the records waiting to be saved.
func (q *Queue) Pending() []models.CompletionRecord {
	q.mu.Lock()
	defer q.mu.Unlock()

	return append([]models.CompletionRecord(nil), q.pending...)
}

func (q *Queue) flush(ctx context.Context) error {
	var (
		errs  []error
		still []models.CompletionRecord
	)

	for _, rec := range q.pending {
		if err := q.Repository.SaveCompletion(ctx, rec); err != nil {
			errs = append(errs, err)
			still = append(still, rec)

			continue
		}

		q.log.Info("queued completion record saved", slog.String("id", rec.ID))
	}

	q.pending = still

	return errors.Join(errs...)
}
