package session

// EventType identifies a state change notification.
type EventType int

const (
	EventStarted EventType = iota
	EventSetCompleted
	EventRestStarted
	EventTick
	EventPreCue
	EventPulse
	EventRestEnded
	EventRestSkipped
	EventCompleted
	EventAbandoned
)

func (e EventType) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventSetCompleted:
		return "set completed"
	case EventRestStarted:
		return "rest started"
	case EventTick:
		return "tick"
	case EventPreCue:
		return "pre-cue"
	case EventPulse:
		return "pulse"
	case EventRestEnded:
		return "rest ended"
	case EventRestSkipped:
		return "rest skipped"
	case EventCompleted:
		return "completed"
	case EventAbandoned:
		return "abandoned"
	}

	return "unknown"
}

// Event is delivered to subscribers after every state change.
type Event struct {
	Type  EventType
	State State
}

// Listener receives engine events. Listeners run synchronously on the
// goroutine that drives the engine and must not call back into it.
type Listener func(Event)

// Cuer plays the audio and haptic signals of a rest period. Implementations
// must return immediately; playback failures are theirs to report.
type Cuer interface {
	// PreCue warns that the rest period is about to end.
	PreCue()
	// Pulse is a short haptic tick during the final countdown.
	Pulse()
	// CompletionPulse signals the natural end of a rest period.
	CompletionPulse()
	// Silence stops any cue that is still playing.
	Silence()
}

type nopCuer struct{}

func (nopCuer) PreCue()          {}
func (nopCuer) Pulse()           {}
func (nopCuer) CompletionPulse() {}
func (nopCuer) Silence()         {}
