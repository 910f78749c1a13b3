package app

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homegym/spotter/internal/catalog"
	"github.com/homegym/spotter/internal/models"
	"github.com/homegym/spotter/internal/static"
)

func init() {
	disableStyling()
}

func TestSampleRoutines(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	files, err := static.SampleRoutines()
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for name, b := range files {
		t.Run(name, func(t *testing.T) {
			r, err := parseRoutine(b)
			require.NoError(t, err)

			assert.NotEmpty(t, r.Name)
			assert.NotEmpty(t, r.Days)
			assert.NoError(t, cat.Validate(r))
		})
	}
}

func TestParseRoutine(t *testing.T) {
	r, err := parseRoutine([]byte(`
name: Minimal
days:
  - name: A
    exercises:
      - exercise: squat
        sets: 2
        reps: [5]
`))
	require.NoError(t, err)

	want := &models.Routine{
		Name: "Minimal",
		Days: []models.Day{
			{
				Name: "A",
				Exercises: []models.PlannedExercise{
					{ExerciseID: "squat", SetCount: 2, Reps: []int{5}},
				},
			},
		},
	}

	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("parseRoutine() mismatch (-want +got):\n%s", diff)
	}

	_, err = parseRoutine([]byte("days: {"))
	assert.Error(t, err)
}

var routines = []models.Routine{
	{ID: "a1", Name: "Push Pull Legs"},
	{ID: "b2", Name: "Full Body"},
	{ID: "c3", Name: "full body"},
	{ID: "d4", Name: "Upper Lower"},
}

func TestFindRoutine(t *testing.T) {
	testCases := []struct {
		err    error
		name   string
		query  string
		wantID string
	}{
		{name: "by id", query: "b2", wantID: "b2"},
		{name: "by name", query: "push pull legs", wantID: "a1"},
		{name: "trimmed", query: "  Upper Lower ", wantID: "d4"},
		{name: "ambiguous name", query: "FULL BODY", err: errAmbiguousRoutine},
		{name: "unknown", query: "bro split", err: errRoutineNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := findRoutine(routines, tc.query)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantID, r.ID)
		})
	}
}

func TestSortRoutines(t *testing.T) {
	rs := []models.Routine{
		{ID: "2", Name: "Week 10"},
		{ID: "1", Name: "Week 2"},
		{ID: "3", Name: "Arms"},
	}

	sortRoutines(rs)

	got := make([]string, len(rs))
	for i := range rs {
		got[i] = rs[i].Name
	}

	assert.Equal(t, []string{"Arms", "Week 2", "Week 10"}, got)
}

func TestChooseDay(t *testing.T) {
	r := &models.Routine{
		Name: "Push Pull Legs",
		Days: []models.Day{{Name: "Push"}, {Name: "Pull"}, {Name: "Legs"}},
	}

	day, err := chooseDay(r, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, day)

	_, err = chooseDay(r, 3)
	assert.ErrorIs(t, err, errDayOutOfRange)
	assert.EqualError(t, err, `routine "Push Pull Legs" has 3 days, day 4 does not exist`)

	single := &models.Routine{Name: "Full Body", Days: []models.Day{{Name: "A"}}}

	day, err = chooseDay(single, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, day)
}

func TestHistoryRange(t *testing.T) {
	now := time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

	from, to, err := historyRange("", "", now)
	require.NoError(t, err)
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())

	from, to, err = historyRange("2026-10-01", "2026-10-10", now)
	require.NoError(t, err)

	assert.Equal(t, 1, from.Day())
	assert.Equal(t, 0, from.Hour())
	assert.Equal(t, 0, from.Minute())

	assert.Equal(t, 10, to.Day())
	assert.Equal(t, 23, to.Hour())
	assert.Equal(t, 59, to.Minute())

	_, _, err = historyRange("zzzz qqqq", "", now)
	assert.ErrorIs(t, err, errInvalidTime)
}

func TestPrintHistoryTable(t *testing.T) {
	records := []models.CompletionRecord{
		{
			ID:                 "r1",
			CompletedAt:        time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
			RoutineName:        "Push Pull Legs",
			DayName:            "Pull",
			ExercisesCompleted: 4,
		},
		{
			ID:                 "r2",
			CompletedAt:        time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
			RoutineName:        "Full Body",
			DayName:            "Full Body",
			ExercisesCompleted: 5,
		},
	}

	var buf bytes.Buffer

	printHistoryTable(&buf, records, true)

	out := buf.String()

	for _, s := range []string{"DATE", "ROUTINE", "EXERCISES", "Push Pull Legs", "Pull", "Full Body", "2026"} {
		assert.Contains(t, out, s)
	}

	assert.Less(t, strings.Index(out, "Push Pull Legs"), strings.Index(out, "Full Body"))
}

func TestSetTargets(t *testing.T) {
	testCases := []struct {
		name string
		want string
		ex   models.PlannedExercise
	}{
		{
			name: "weighted",
			ex:   models.PlannedExercise{SetCount: 2, Reps: []int{8, 6}, Weights: []float64{60, 62.5}},
			want: "8@60, 6@62.5",
		},
		{
			name: "missing targets",
			ex:   models.PlannedExercise{SetCount: 3, Reps: []int{5}},
			want: "5, 10, 10",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, setTargets(tc.ex))
		})
	}
}

func TestConfirmDeletion(t *testing.T) {
	var buf bytes.Buffer

	confirmDeletion(strings.NewReader("\n"), &buf, routines[:1])

	assert.Contains(t, buf.String(), "Push Pull Legs")
	assert.Contains(t, buf.String(), "deleted permanently")
}
