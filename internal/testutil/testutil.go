// Package testutil holds fixtures shared by the package tests
package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/homegym/spotter/internal/models"
	"github.com/homegym/spotter/internal/osutil"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile checks the output of tc against testdata/<name>.golden.
// A nil output requires the golden file to be absent.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: normalise CRLF line endings in the golden files
		t.Skip("skipping golden file test in Windows")
	}

	output, name := tc.Output()

	if output == nil {
		f := filepath.Join("testdata", name+".golden")
		if _, err := os.Stat(f); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata"))
	g.Assert(t, name, output)
}

// Exercise returns a planned exercise with the same targets for every set.
func Exercise(id string, sets, reps int, weight float64) models.PlannedExercise {
	ex := models.PlannedExercise{ExerciseID: id, SetCount: sets}

	for range sets {
		ex.Reps = append(ex.Reps, reps)
		ex.Weights = append(ex.Weights, weight)
	}

	return ex
}

// Plan returns the plan for the "Pull" day of a "Push Pull" routine.
func Plan(exercises ...models.PlannedExercise) models.TrainingPlan {
	return models.TrainingPlan{
		RoutineID:   "r1",
		RoutineName: "Push Pull",
		DayIndex:    1,
		DayName:     "Pull",
		Exercises:   exercises,
	}
}

// Recorder keeps every completion record it is given and fails with Err when
// it is set.
type Recorder struct {
	Err     error
	records []models.CompletionRecord
	mu      sync.Mutex
}

func (r *Recorder) SaveCompletion(_ context.Context, rec models.CompletionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)

	return r.Err
}

// Records returns the records passed to SaveCompletion, failed ones
// included.
func (r *Recorder) Records() []models.CompletionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.CompletionRecord(nil), r.records...)
}
