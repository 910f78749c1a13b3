package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homegym/spotter/internal/models"
)

var epoch = time.Date(2026, time.October, 1, 7, 0, 0, 0, time.UTC)

func newBolt(t *testing.T) Repository {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "data", "spotter.db"))
	require.NoError(t, err)

	c.now = func() time.Time { return epoch }

	t.Cleanup(func() { _ = c.Close() })

	return c
}

func newSQLite(t *testing.T) Repository {
	t.Helper()

	s, err := NewSQLite(context.Background(), memoryDSN)
	require.NoError(t, err)

	s.now = func() time.Time { return epoch }

	t.Cleanup(func() { _ = s.Close() })

	return s
}

var backends = map[string]func(t *testing.T) Repository{
	DriverBolt:   newBolt,
	DriverSQLite: newSQLite,
}

func pushDay() *models.Routine {
	return &models.Routine{
		Name: "Upper Lower",
		Days: []models.Day{
			{
				Name: "Upper",
				Exercises: []models.PlannedExercise{
					{ExerciseID: "bench_press", SetCount: 3, Reps: []int{8, 8, 8}, Weights: []float64{60, 60, 60}},
					{ExerciseID: "pull_up", SetCount: 2, Reps: []int{6, 6}},
				},
			},
			{
				Name: "Lower",
				Exercises: []models.PlannedExercise{
					{ExerciseID: "squat", SetCount: 3, Reps: []int{5, 5, 5}, Weights: []float64{80, 80, 80}},
				},
			},
		},
	}
}

func record(id string, at time.Time) models.CompletionRecord {
	return models.CompletionRecord{
		ID:                 id,
		RoutineID:          "r1",
		RoutineName:        "Upper Lower",
		DayIndex:           0,
		DayName:            "Upper",
		ExercisesCompleted: 2,
		CompletedAt:        at,
	}
}

func TestRoutineCRUD(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			repo := open(t)
			ctx := context.Background()

			r := pushDay()
			require.NoError(t, repo.SaveRoutine(ctx, r))
			require.NotEmpty(t, r.ID)
			assert.Equal(t, epoch, r.CreatedAt)

			got, err := repo.GetRoutine(ctx, r.ID)
			require.NoError(t, err)

			if diff := cmp.Diff(r, got); diff != "" {
				t.Errorf("GetRoutine() mismatch (-want +got):\n%s", diff)
			}

			r.Name = "Upper Lower v2"
			require.NoError(t, repo.SaveRoutine(ctx, r))

			all, err := repo.ListRoutines(ctx)
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, "Upper Lower v2", all[0].Name)

			require.NoError(t, repo.DeleteRoutine(ctx, r.ID))

			_, err = repo.GetRoutine(ctx, r.ID)
			assert.ErrorIs(t, err, ErrNotFound)

			assert.ErrorIs(t, repo.DeleteRoutine(ctx, r.ID), ErrNotFound)
		})
	}
}

func TestSaveRoutineRequiresName(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			repo := open(t)

			err := repo.SaveRoutine(context.Background(), &models.Routine{Name: "  "})
			assert.ErrorIs(t, err, errRoutineName)
		})
	}
}

func TestGetPlan(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			repo := open(t)
			ctx := context.Background()

			r := pushDay()
			require.NoError(t, repo.SaveRoutine(ctx, r))

			plan, err := repo.GetPlan(ctx, r.ID, 1)
			require.NoError(t, err)

			want := models.TrainingPlan{
				RoutineID:   r.ID,
				RoutineName: "Upper Lower",
				DayIndex:    1,
				DayName:     "Lower",
				Exercises:   r.Days[1].Exercises,
			}

			if diff := cmp.Diff(want, plan); diff != "" {
				t.Errorf("GetPlan() mismatch (-want +got):\n%s", diff)
			}

			_, err = repo.GetPlan(ctx, r.ID, 2)
			assert.ErrorIs(t, err, ErrNotFound)

			_, err = repo.GetPlan(ctx, r.ID, -1)
			assert.ErrorIs(t, err, ErrNotFound)

			_, err = repo.GetPlan(ctx, "missing", 0)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestCompletionHistory(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			repo := open(t)
			ctx := context.Background()

			_, err := repo.LastWorkout(ctx)
			assert.ErrorIs(t, err, ErrNotFound)

			recs := []models.CompletionRecord{
				record("a", epoch),
				record("b", epoch.Add(24*time.Hour)),
				record("c", epoch.Add(48*time.Hour)),
			}

			for _, rec := range recs {
				require.NoError(t, repo.SaveCompletion(ctx, rec))
			}

			last, err := repo.LastWorkout(ctx)
			require.NoError(t, err)
			assert.Equal(t, "c", last.ID)
			assert.True(t, last.CompletedAt.Equal(recs[2].CompletedAt))

			all, err := repo.History(ctx, time.Time{}, time.Time{})
			require.NoError(t, err)
			require.Len(t, all, 3)

			var ids []string
			for _, rec := range all {
				ids = append(ids, rec.ID)
			}

			assert.Equal(t, []string{"a", "b", "c"}, ids)

			middle, err := repo.History(ctx, epoch.Add(time.Hour), epoch.Add(24*time.Hour))
			require.NoError(t, err)
			require.Len(t, middle, 1)
			assert.Equal(t, "b", middle[0].ID)

			// an older record saved late keeps the newer last workout
			require.NoError(t, repo.SaveCompletion(ctx, record("old", epoch.Add(-time.Hour))))

			last, err = repo.LastWorkout(ctx)
			require.NoError(t, err)
			assert.Equal(t, "c", last.ID)
		})
	}
}

func TestSettings(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			repo := open(t)
			ctx := context.Background()

			s, err := repo.GetSettings(ctx)
			require.NoError(t, err)
			assert.Equal(t, models.DefaultSettings(), s)

			s.RestBetweenSets = 45
			s.CuesEnabled = false
			s.Language = "de"

			require.NoError(t, repo.SaveSettings(ctx, s))

			got, err := repo.GetSettings(ctx)
			require.NoError(t, err)

			assert.True(t, got.UpdatedAt.Equal(epoch))
			assert.Equal(t, "de", got.Language)
			assert.Equal(t, 45, got.RestBetweenSets)
			assert.Equal(t, models.DefaultSecondsBetweenExercises, got.RestBetweenExercises)
			assert.False(t, got.CuesEnabled)
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	repo, err := Open(ctx, DriverSQLite, filepath.Join(t.TempDir(), "spotter.sqlite"))
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	_, err = Open(ctx, "postgres", "")
	assert.ErrorIs(t, err, errUnknownDriver)
}

func TestBoltSingleInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spotter.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	_, err = NewClient(path)
	assert.ErrorIs(t, err, errInstanceRunning)
}

func TestSQLiteMigrateIdempotent(t *testing.T) {
	s, err := NewSQLite(context.Background(), memoryDSN)
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Close() })

	assert.NoError(t, s.Migrate(context.Background()))
}
