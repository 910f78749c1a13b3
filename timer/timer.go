// Package timer runs a workout session in the terminal and reports the status
// of a running session to other processes
package timer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/homegym/spotter/internal/models"
	"github.com/homegym/spotter/internal/osutil"
	"github.com/homegym/spotter/session"
)

// fallbackDestination is where a confirmed exit leads. The terminal UI has a
// single screen, so leaving it ends the program.
const fallbackDestination = "exit"

// Namer resolves exercise IDs to display names.
type Namer interface {
	Name(id string) string
}

// describer is implemented by namers that also know how an exercise is
// performed.
type describer interface {
	Describe(id string) (models.Exercise, error)
}

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, msg string)
}

// Options configures the session screen.
type Options struct {
	Names          Namer
	Notifier       Notifier
	Logger         *slog.Logger
	Now            func() time.Time
	StatusFile     string
	PostCmd        string
	DarkTheme      bool
	TwentyFourHour bool
}

// Model is the bubbletea model that hosts a session engine and its exit
// guard. The engine is only driven from Update, which bubbletea calls on a
// single goroutine.
type Model struct {
	ctx      context.Context
	engine   *session.Engine
	guard    *session.Guard
	log      *slog.Logger
	saveErr  *session.SaveError
	opts     Options
	styles   styles
	keys     keymap
	clock    btimer.Model
	help     help.Model
	progress progress.Model
	attempt  session.ExitAttempt
	quitting bool
}

// New creates the screen for e, which must already be started.
func New(ctx context.Context, e *session.Engine, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Names == nil {
		opts.Names = idNamer{}
	}

	m := &Model{
		ctx:      ctx,
		engine:   e,
		opts:     opts,
		log:      opts.Logger,
		styles:   newStyles(opts.DarkTheme),
		keys:     defaultKeymap,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}

	m.guard = session.NewGuard(e, session.GuardOptions{
		Fallback:  fallbackDestination,
		StopTimer: m.stopClock,
		Navigate: func(dest string) {
			m.log.Debug("leaving session", slog.String("destination", dest))
			m.quitting = true
		},
	})

	m.guard.OnExitAttempt(func(a session.ExitAttempt) {
		m.attempt = a
	})

	e.Subscribe(m.onEvent)

	m.syncStatus()

	return m
}

// Run shows the session until the user leaves it. A *session.SaveError is
// returned if the workout was completed but could not be recorded.
func Run(ctx context.Context, e *session.Engine, opts Options) error {
	m := New(ctx, e, opts)

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return err
	}

	if err := removeStatusFile(opts.StatusFile); err != nil {
		m.log.Warn("unable to remove status file", slog.Any("error", err))
	}

	if m.saveErr != nil {
		return m.saveErr
	}

	return nil
}

func (m *Model) Init() tea.Cmd {
	plan := m.engine.Plan()

	return tea.SetWindowTitle("spotter: " + plan.DayName)
}

func (m *Model) stopClock() {
	m.clock = btimer.Model{}
}

// onEvent keeps the status file in step with the engine.
func (m *Model) onEvent(ev session.Event) {
	switch ev.Type {
	case session.EventCompleted, session.EventAbandoned:
		if err := removeStatusFile(m.opts.StatusFile); err != nil {
			m.log.Warn("unable to remove status file", slog.Any("error", err))
		}
	default:
		m.syncStatus()
	}
}

func (m *Model) syncStatus() {
	if m.opts.StatusFile == "" {
		return
	}

	s, ok := statusFor(m.engine, m.opts.Names, m.opts.Now())
	if !ok {
		return
	}

	if err := writeStatusFile(m.opts.StatusFile, s); err != nil {
		m.log.Warn("unable to write status file", slog.Any("error", err))
	}
}

func (m *Model) completeSet() tea.Cmd {
	if m.engine.State().Phase != session.Exercising {
		return nil
	}

	err := m.engine.CompleteCurrentSet(m.ctx)

	var saveErr *session.SaveError

	switch {
	case errors.As(err, &saveErr):
		m.saveErr = saveErr
	case err != nil:
		m.log.Error("unable to complete set", slog.Any("error", err))
		return nil
	}

	st := m.engine.State()

	switch st.Phase {
	case session.Resting:
		m.clock = btimer.NewWithInterval(
			time.Duration(st.RestRemaining)*time.Second,
			time.Second,
		)

		return m.clock.Init()
	}

	return nil
}

// leave routes a navigation attempt through the guard.
func (m *Model) leave(a session.ExitAttempt) tea.Cmd {
	if m.guard.Intercept(a) == session.DecisionStay {
		return nil
	}

	m.quitting = true

	return tea.Quit
}

// AfterWorkout sends the completion notification and runs the post-workout
// command. It is called once Run has returned for a completed workout.
func AfterWorkout(plan models.TrainingPlan, n Notifier, postCmd string) error {
	if n != nil {
		n.Notify("Workout complete", plan.RoutineName+": "+plan.DayName)
	}

	cmd, err := osutil.Command(postCmd)
	if err != nil {
		return errPostWorkoutCmd.Wrap(err)
	}

	if cmd == nil {
		return nil
	}

	if err := cmd.Run(); err != nil {
		return errPostWorkoutCmd.Wrap(err)
	}

	return nil
}

type idNamer struct{}

func (idNamer) Name(id string) string { return id }
