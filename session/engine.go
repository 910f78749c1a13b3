// Package session drives a single workout session through its exercises,
// sets and rest periods, and guards it against accidental exits
package session

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"github.com/homegym/spotter/internal/models"
)

const (
	// PreCueAt is the number of seconds left in a rest period when the pre-cue
	// fires.
	PreCueAt = 8
	// countdownPulses is the size of the final countdown window in which every
	// tick emits a short pulse.
	countdownPulses = 3
	// unitsPerExercise is the fixed weight of one exercise in Progress.
	unitsPerExercise = 3
)

// Recorder persists the record of a completed session.
type Recorder interface {
	SaveCompletion(ctx context.Context, rec models.CompletionRecord) error
}

// Options configures an Engine. They are fixed for the lifetime of the
// session.
type Options struct {
	Cues        Cuer
	Recorder    Recorder
	Now         func() time.Time
	Logger      *slog.Logger
	Rest        models.RestConfig
	CuesEnabled bool
}

// Engine is the state machine of one workout session. It is not safe for
// concurrent use: a single goroutine must own it and serialise every call.
type Engine struct {
	cues      Cuer
	recorder  Recorder
	now       func() time.Time
	log       *slog.Logger
	listeners []Listener
	plan      models.TrainingPlan
	rest      models.RestConfig
	state     State
	recorded  bool
}

// New creates an engine for plan. The plan is normalised and copied, so later
// changes to the argument do not affect the session.
func New(plan models.TrainingPlan, opts Options) *Engine {
	e := &Engine{
		plan:     plan.Normalise(),
		rest:     opts.Rest,
		recorder: opts.Recorder,
		now:      opts.Now,
		log:      opts.Logger,
		cues:     opts.Cues,
	}

	if e.now == nil {
		e.now = time.Now
	}

	if e.log == nil {
		e.log = slog.Default()
	}

	if e.cues == nil || !opts.CuesEnabled {
		e.cues = nopCuer{}
	}

	e.rest.SecondsBetweenSets = max(e.rest.SecondsBetweenSets, 0)
	e.rest.SecondsBetweenExercises = max(e.rest.SecondsBetweenExercises, 0)

	return e
}

// Subscribe registers l for every subsequent state change.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

// State returns a snapshot of the session state.
func (e *Engine) State() State {
	return e.state
}

// Plan returns the normalised plan of the session.
func (e *Engine) Plan() models.TrainingPlan {
	p := e.plan
	p.Exercises = slices.Clone(e.plan.Exercises)

	return p
}

// Rest returns the rest durations of the session.
func (e *Engine) Rest() models.RestConfig {
	return e.rest
}

// Current returns the exercise at the current index.
func (e *Engine) Current() (models.PlannedExercise, bool) {
	if e.state.ExerciseIndex >= len(e.plan.Exercises) ||
		e.state.Abandoned {
		return models.PlannedExercise{}, false
	}

	return e.plan.Exercises[e.state.ExerciseIndex], true
}

// Start begins the session with the first set of the first exercise.
func (e *Engine) Start() error {
	if err := e.require("start", NotStarted); err != nil {
		return err
	}

	if len(e.plan.Exercises) == 0 {
		return ErrEmptyPlan
	}

	e.state = State{Phase: Exercising}

	e.log.Info(
		"workout started",
		slog.String("routine", e.plan.RoutineName),
		slog.String("day", e.plan.DayName),
		slog.Int("exercises", len(e.plan.Exercises)),
	)

	e.emit(EventStarted)

	return nil
}

// CompleteCurrentSet marks the current set as done and moves to the next rest
// period, or completes the session after the last set of the last exercise.
// A *SaveError is returned if the completion record could not be persisted.
func (e *Engine) CompleteCurrentSet(ctx context.Context) error {
	if err := e.require("complete a set", Exercising); err != nil {
		return err
	}

	ex := e.plan.Exercises[e.state.ExerciseIndex]

	switch {
	case e.state.SetIndex < ex.SetCount-1:
		e.state.SetIndex++
		e.beginRest(RestBetweenSets, e.rest.SecondsBetweenSets)
	case e.state.ExerciseIndex < len(e.plan.Exercises)-1:
		e.state.ExerciseIndex++
		e.state.SetIndex = 0
		e.beginRest(RestBetweenExercises, e.rest.SecondsBetweenExercises)
	default:
		return e.complete(ctx)
	}

	return nil
}

// Tick advances the rest countdown by one second. It must be called once per
// elapsed second while resting.
func (e *Engine) Tick() error {
	if err := e.require("tick", Resting); err != nil {
		return err
	}

	e.state.RestRemaining--

	if e.state.RestRemaining <= 0 {
		e.state.RestRemaining = 0
		e.state.Phase = Exercising
		e.state.RestKind = RestNone

		e.cues.CompletionPulse()
		e.emit(EventRestEnded)

		return nil
	}

	e.emit(EventTick)

	switch {
	case e.state.RestRemaining == PreCueAt && !e.state.CueFired:
		e.state.CueFired = true

		e.cues.PreCue()
		e.emit(EventPreCue)
	case e.state.RestRemaining <= countdownPulses:
		e.cues.Pulse()
		e.emit(EventPulse)
	}

	return nil
}

// SkipRest ends the current rest period immediately. No completion pulse is
// played.
func (e *Engine) SkipRest() error {
	if err := e.require("skip rest", Resting); err != nil {
		return err
	}

	e.cues.Silence()

	e.state.Phase = Exercising
	e.state.RestKind = RestNone
	e.state.RestRemaining = 0

	e.emit(EventRestSkipped)

	return nil
}

// Abandon discards the session without writing a completion record.
func (e *Engine) Abandon() error {
	if err := e.require("abandon", Exercising, Resting); err != nil {
		return err
	}

	e.cues.Silence()

	e.log.Info(
		"workout abandoned",
		slog.String("routine", e.plan.RoutineName),
		slog.Int("exercise", e.state.ExerciseIndex+1),
		slog.Int("set", e.state.SetIndex+1),
	)

	e.state = State{Abandoned: true}

	e.emit(EventAbandoned)

	return nil
}

// PeekNext describes the set that follows the current rest period. It has no
// side effects. The boolean is false outside a rest period or when no work is
// left.
func (e *Engine) PeekNext() (NextInfo, bool) {
	if e.state.Phase != Resting || e.state.Abandoned {
		return NextInfo{}, false
	}

	idx := e.state.ExerciseIndex
	if idx >= len(e.plan.Exercises) {
		return NextInfo{}, false
	}

	ex := e.plan.Exercises[idx]
	if e.state.SetIndex < ex.SetCount {
		return NextInfo{
			ExerciseID:    ex.ExerciseID,
			SetNumber:     e.state.SetIndex + 1,
			Reps:          ex.Reps[e.state.SetIndex],
			Weight:        ex.Weights[e.state.SetIndex],
			IsNewExercise: e.state.RestKind == RestBetweenExercises,
		}, true
	}

	if idx+1 < len(e.plan.Exercises) {
		next := e.plan.Exercises[idx+1]

		return NextInfo{
			ExerciseID:    next.ExerciseID,
			SetNumber:     1,
			Reps:          next.Reps[0],
			Weight:        next.Weights[0],
			IsNewExercise: true,
		}, true
	}

	return NextInfo{}, false
}

// Progress approximates how much of the session is done, in [0, 1]. Every
// exercise counts as three units regardless of its actual number of sets.
func (e *Engine) Progress() float64 {
	if e.state.Abandoned || e.state.Phase == NotStarted {
		return 0
	}

	if e.state.Phase == Complete {
		return 1
	}

	total := len(e.plan.Exercises) * unitsPerExercise
	if total == 0 {
		return 0
	}

	done := e.state.ExerciseIndex*unitsPerExercise + e.state.SetIndex

	return min(max(float64(done)/float64(total), 0), 1)
}

func (e *Engine) beginRest(kind RestKind, seconds int) {
	e.emit(EventSetCompleted)

	if seconds == 0 {
		return
	}

	e.state.Phase = Resting
	e.state.RestKind = kind
	e.state.RestRemaining = seconds
	e.state.CueFired = false

	e.emit(EventRestStarted)
}

// complete ends the session and hands the completion record over exactly
// once.
func (e *Engine) complete(ctx context.Context) error {
	e.state.Phase = Complete
	e.state.RestKind = RestNone
	e.state.RestRemaining = 0

	e.emit(EventSetCompleted)

	if e.recorded {
		return nil
	}

	e.recorded = true

	rec := models.CompletionRecord{
		ID:                 uuid.NewString(),
		RoutineID:          e.plan.RoutineID,
		RoutineName:        e.plan.RoutineName,
		DayIndex:           e.plan.DayIndex,
		DayName:            e.plan.DayName,
		ExercisesCompleted: len(e.plan.Exercises),
		CompletedAt:        e.now(),
	}

	e.log.Info(
		"workout completed",
		slog.String("routine", rec.RoutineName),
		slog.String("day", rec.DayName),
		slog.Int("exercises", rec.ExercisesCompleted),
	)

	var err error
	if e.recorder != nil {
		err = e.recorder.SaveCompletion(ctx, rec)
	}

	e.emit(EventCompleted)

	if err != nil {
		e.log.Error("saving completed workout failed", slog.Any("error", err))

		return &SaveError{Err: err, Record: rec}
	}

	return nil
}

func (e *Engine) require(op string, phases ...Phase) error {
	if !e.state.Abandoned && slices.Contains(phases, e.state.Phase) {
		return nil
	}

	err := &InvalidTransitionError{Op: op, Phase: e.state.Phase}

	if e.log.Enabled(context.Background(), slog.LevelDebug) {
		e.log.Debug(
			"rejected transition",
			slog.String("op", op),
			slog.String("state", spew.Sdump(e.state)),
		)
	}

	return err
}

func (e *Engine) emit(t EventType) {
	ev := Event{Type: t, State: e.state}

	for _, l := range e.listeners {
		l(ev)
	}
}
