package session

import (
	"errors"
)

var errNoPendingExit = errors.New("there is no pending exit to confirm")

// ExitAttempt is the kind of navigation the host tried to perform.
type ExitAttempt int

const (
	ExitBack ExitAttempt = iota
	ExitTabSwitch
	ExitQuit
)

func (a ExitAttempt) String() string {
	switch a {
	case ExitBack:
		return "back"
	case ExitTabSwitch:
		return "tab switch"
	case ExitQuit:
		return "quit"
	}

	return "unknown"
}

// Decision tells the host whether an intercepted navigation may proceed.
type Decision int

const (
	// DecisionAllow lets the navigation through.
	DecisionAllow Decision = iota
	// DecisionStay suppresses the navigation and keeps the session mounted.
	DecisionStay
)

// Latch is the one-shot permission the guard grants to its own navigation.
type Latch int

const (
	LatchConsumed Latch = iota
	LatchArmed
)

// GuardOptions configures a Guard.
type GuardOptions struct {
	// Navigate moves the host to dest. It is called after a confirmed exit.
	Navigate func(dest string)
	// StopTimer cancels the host's rest tick source.
	StopTimer func()
	// Fallback is the destination used after a confirmed exit.
	Fallback string
}

// Guard prevents an active session from being left by accident. Exit attempts
// are suppressed until the user confirms, after which the session is
// abandoned and a single navigation to the fallback destination is allowed.
type Guard struct {
	engine    *Engine
	onExit    []func(ExitAttempt)
	opts      GuardOptions
	latch     Latch
	prompting bool
}

// NewGuard creates a guard for the session driven by e.
func NewGuard(e *Engine, opts GuardOptions) *Guard {
	return &Guard{
		engine: e,
		opts:   opts,
	}
}

// OnExitAttempt registers fn to be called when the confirmation prompt must
// be shown.
func (g *Guard) OnExitAttempt(fn func(ExitAttempt)) {
	g.onExit = append(g.onExit, fn)
}

// Armed reports whether exit attempts are currently intercepted.
func (g *Guard) Armed() bool {
	return g.engine.State().Active()
}

// Prompting reports whether the confirmation prompt is showing.
func (g *Guard) Prompting() bool {
	return g.prompting
}

// Latch returns the state of the allow-next-navigation latch.
func (g *Guard) Latch() Latch {
	return g.latch
}

// Intercept is called by the host for every navigation attempt.
func (g *Guard) Intercept(attempt ExitAttempt) Decision {
	if g.latch == LatchArmed {
		g.latch = LatchConsumed
		return DecisionAllow
	}

	if !g.Armed() {
		return DecisionAllow
	}

	if g.prompting {
		return DecisionStay
	}

	g.prompting = true

	for _, fn := range g.onExit {
		fn(attempt)
	}

	return DecisionStay
}

// Cancel dismisses the prompt and keeps the session running.
func (g *Guard) Cancel() {
	g.prompting = false
}

// Confirm abandons the session, stops the rest timer and navigates to the
// fallback destination.
func (g *Guard) Confirm() error {
	if !g.prompting {
		return errNoPendingExit
	}

	// the session may have completed while the prompt was showing
	if g.Armed() {
		if err := g.engine.Abandon(); err != nil {
			return err
		}
	}

	if g.opts.StopTimer != nil {
		g.opts.StopTimer()
	}

	g.prompting = false
	g.latch = LatchArmed

	if g.opts.Navigate != nil {
		g.opts.Navigate(g.opts.Fallback)
	}

	return nil
}
