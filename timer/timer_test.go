package timer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homegym/spotter/internal/catalog"
	"github.com/homegym/spotter/internal/models"
	"github.com/homegym/spotter/internal/testutil"
	"github.com/homegym/spotter/session"
)

type nameMap map[string]string

func (n nameMap) Name(id string) string {
	if name, ok := n[id]; ok {
		return name
	}

	return id
}

var names = nameMap{
	"bench_press": "Bench Press",
	"dip":         "Dip",
}

type recordingNotifier struct {
	titles []string
}

func (r *recordingNotifier) Notify(title, _ string) {
	r.titles = append(r.titles, title)
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type fixture struct {
	model    *Model
	engine   *session.Engine
	notifier *recordingNotifier
	status   string
}

func newFixture(t *testing.T, rec session.Recorder, sets ...int) *fixture {
	t.Helper()

	plan := models.TrainingPlan{RoutineName: "PPL", DayName: "Push"}
	for i, n := range sets {
		id := "bench_press"
		if i > 0 {
			id = "dip"
		}

		plan.Exercises = append(plan.Exercises, models.PlannedExercise{
			ExerciseID: id,
			SetCount:   n,
		})
	}

	e := session.New(plan, session.Options{
		Rest:     models.RestConfig{SecondsBetweenSets: 2, SecondsBetweenExercises: 3},
		Recorder: rec,
		Now:      func() time.Time { return now },
	})
	require.NoError(t, e.Start())

	f := &fixture{
		engine:   e,
		notifier: &recordingNotifier{},
		status:   filepath.Join(t.TempDir(), "status.json"),
	}

	f.model = New(context.Background(), e, Options{
		Names:      names,
		Notifier:   f.notifier,
		StatusFile: f.status,
		Now:        func() time.Time { return now },
	})

	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	_, cmd := f.model.Update(msg)
	return cmd
}

func (f *fixture) tick() tea.Cmd {
	return f.send(btimer.TickMsg{ID: f.model.clock.ID()})
}

func TestRestCycle(t *testing.T) {
	f := newFixture(t, nil, 2)

	assert.FileExists(t, f.status)
	assert.Contains(t, f.model.View(), "Bench Press")

	cmd := f.send(enterKey)
	require.NotNil(t, cmd)
	assert.Equal(t, session.Resting, f.engine.State().Phase)
	assert.Contains(t, f.model.View(), "00:02")
	assert.Contains(t, f.model.View(), "Next set: Bench Press · set 2")

	assert.NotNil(t, f.tick())
	assert.Equal(t, 1, f.engine.State().RestRemaining)

	assert.Nil(t, f.tick())
	assert.Equal(t, session.Exercising, f.engine.State().Phase)
	assert.Equal(t, 1, f.engine.State().SetIndex)
}

func TestStaleTicksAreDropped(t *testing.T) {
	f := newFixture(t, nil, 3)

	f.send(enterKey)
	stale := f.model.clock.ID()

	f.send(runeKey('s'))
	assert.Equal(t, session.Exercising, f.engine.State().Phase)

	// a tick that was already in flight when the rest was skipped
	assert.Nil(t, f.send(btimer.TickMsg{ID: stale}))

	f.send(enterKey)
	require.Equal(t, session.Resting, f.engine.State().Phase)

	assert.Nil(t, f.send(btimer.TickMsg{ID: stale}))
	assert.Equal(t, 2, f.engine.State().RestRemaining)

	f.tick()
	assert.Equal(t, 1, f.engine.State().RestRemaining)
}

func TestQuitNeedsConfirmation(t *testing.T) {
	f := newFixture(t, nil, 2)

	assert.Nil(t, f.send(runeKey('q')))
	assert.True(t, f.model.guard.Prompting())
	assert.Contains(t, f.model.View(), "End workout?")

	// further attempts keep the single prompt
	assert.Nil(t, f.send(tabKey))
	assert.True(t, f.model.guard.Prompting())

	f.send(runeKey('n'))
	assert.False(t, f.model.guard.Prompting())
	assert.True(t, f.engine.State().Active())

	f.send(escKey)
	require.True(t, f.model.guard.Prompting())

	cmd := f.send(runeKey('y'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	assert.True(t, f.engine.State().Abandoned)
	assert.Equal(t, session.LatchConsumed, f.model.guard.Latch())
	assert.NoFileExists(t, f.status)
	assert.Empty(t, f.model.View())
}

func TestConfirmDuringRestStopsTicks(t *testing.T) {
	f := newFixture(t, nil, 2)

	f.send(enterKey)
	id := f.model.clock.ID()

	f.send(runeKey('q'))
	f.send(runeKey('y'))

	assert.Nil(t, f.send(btimer.TickMsg{ID: id}))
	assert.True(t, f.engine.State().Abandoned)
}

func TestCompleteWorkout(t *testing.T) {
	f := newFixture(t, nil, 1)

	assert.Nil(t, f.send(enterKey))
	assert.Equal(t, session.Complete, f.engine.State().Phase)
	assert.NoFileExists(t, f.status)
	assert.Contains(t, f.model.View(), "Push complete: 1 exercises")

	// the notification waits until the screen is gone
	assert.Empty(t, f.notifier.titles)

	quit := f.send(runeKey('q'))
	require.NotNil(t, quit)
	assert.Equal(t, tea.QuitMsg{}, quit())
}

func TestAfterWorkout(t *testing.T) {
	plan := models.TrainingPlan{RoutineName: "PPL", DayName: "Push"}

	testCases := []struct {
		err     error
		name    string
		postCmd string
	}{
		{name: "no command", postCmd: ""},
		{name: "unbalanced quotes", postCmd: `echo 'done`, err: errPostWorkoutCmd},
		{name: "missing binary", postCmd: "spotter-no-such-command --now", err: errPostWorkoutCmd},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := &recordingNotifier{}

			err := AfterWorkout(plan, n, tc.postCmd)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, []string{"Workout complete"}, n.titles)
		})
	}
}

func TestExerciseDescription(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	f := newFixture(t, nil, 2)

	assert.NotContains(t, f.model.View(), "flat bench")

	f.model.opts.Names = cat

	view := f.model.View()
	assert.Contains(t, view, "Bench Press")
	assert.Contains(t, view, "Lie on a flat bench")
}

func TestSaveFailureIsShown(t *testing.T) {
	f := newFixture(t, &testutil.Recorder{Err: errors.New("disk full")}, 1)

	f.send(enterKey)

	require.NotNil(t, f.model.saveErr)
	assert.Equal(t, session.Complete, f.engine.State().Phase)
	assert.Contains(t, f.model.View(), "could not be saved")
}

func TestTarget(t *testing.T) {
	assert.Equal(t, "8 reps", target(8, 0))
	assert.Equal(t, "5 reps @ 62.5 kg", target(5, 62.5))
}
