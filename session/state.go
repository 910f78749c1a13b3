package session

// Phase is the stage of a workout session.
type Phase int

const (
	NotStarted Phase = iota
	Exercising
	Resting
	Complete
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case Exercising:
		return "exercising"
	case Resting:
		return "resting"
	case Complete:
		return "complete"
	}

	return "unknown"
}

// RestKind tells what a rest period separates. It is only meaningful while
// resting.
type RestKind int

const (
	RestNone RestKind = iota
	RestBetweenSets
	RestBetweenExercises
)

func (k RestKind) String() string {
	switch k {
	case RestBetweenSets:
		return "between sets"
	case RestBetweenExercises:
		return "between exercises"
	}

	return "none"
}

// State is a snapshot of a running session.
type State struct {
	ExerciseIndex int
	SetIndex      int
	Phase         Phase
	RestKind      RestKind
	RestRemaining int
	CueFired      bool
	// Abandoned is set once the session has been discarded.
	Abandoned bool
}

// Active reports whether the session is in progress.
func (s State) Active() bool {
	return !s.Abandoned && (s.Phase == Exercising || s.Phase == Resting)
}

// NextInfo describes the set that follows the current rest period.
type NextInfo struct {
	ExerciseID    string
	Reps          int
	Weight        float64
	SetNumber     int
	// IsNewExercise is true during a rest between exercises.
	IsNewExercise bool
}
