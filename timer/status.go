package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/homegym/spotter/internal/osutil"
	"github.com/homegym/spotter/internal/timeutil"
	"github.com/homegym/spotter/session"
)

const (
	phaseExercising = "exercising"
	phaseResting    = "resting"
)

// Status is the snapshot of a running session written to the status file.
type Status struct {
	RestEndsAt     time.Time `json:"rest_ends_at"`
	Phase          string    `json:"phase"`
	Routine        string    `json:"routine"`
	Day            string    `json:"day"`
	Exercise       string    `json:"exercise"`
	Set            int       `json:"set"`
	Sets           int       `json:"sets"`
	ExerciseNumber int       `json:"exercise_number"`
	Exercises      int       `json:"exercises"`
}

// statusFor describes the state of e. The exercise and set always refer to
// the upcoming work, which during a rest is the set after the rest.
func statusFor(e *session.Engine, names Namer, now time.Time) (Status, bool) {
	st := e.State()
	if !st.Active() {
		return Status{}, false
	}

	plan := e.Plan()
	ex := plan.Exercises[st.ExerciseIndex]

	s := Status{
		Phase:          phaseExercising,
		Routine:        plan.RoutineName,
		Day:            plan.DayName,
		Exercise:       names.Name(ex.ExerciseID),
		Set:            st.SetIndex + 1,
		Sets:           ex.SetCount,
		ExerciseNumber: st.ExerciseIndex + 1,
		Exercises:      len(plan.Exercises),
	}

	if st.Phase == session.Resting {
		s.Phase = phaseResting
		s.RestEndsAt = now.Add(time.Duration(st.RestRemaining) * time.Second)
	}

	return s, true
}

// formatStatus renders the one-line status. It is empty when no session is
// in progress.
func formatStatus(s Status, now time.Time) string {
	switch s.Phase {
	case phaseResting:
		left := int(math.Ceil(s.RestEndsAt.Sub(now).Seconds()))

		return fmt.Sprintf(
			"[Rest %d/%d] %s: %s",
			s.Set,
			s.Sets,
			s.Exercise,
			timeutil.Clock(left),
		)
	case phaseExercising:
		return fmt.Sprintf(
			"[Set %d/%d] %s (exercise %d/%d)",
			s.Set,
			s.Sets,
			s.Exercise,
			s.ExerciseNumber,
			s.Exercises,
		)
	}

	return ""
}

func writeStatusFile(path string, s Status) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return err
	}

	return os.WriteFile(path, b, osutil.FilePermission)
}

func removeStatusFile(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// ReportStatus prints the status of the running session, if any, to w.
func ReportStatus(path string, now time.Time, w io.Writer) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return errReadStatus.Wrap(err)
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return errReadStatus.Wrap(err)
	}

	line := formatStatus(s, now)
	if line == "" {
		return nil
	}

	_, err = fmt.Fprintln(w, line)

	return err
}
