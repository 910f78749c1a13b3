package timer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/homegym/spotter/internal/timeutil"
	"github.com/homegym/spotter/session"
)

// target describes the reps and weight of a set.
func target(reps int, weight float64) string {
	if weight == 0 {
		return fmt.Sprintf("%d reps", reps)
	}

	return fmt.Sprintf("%d reps @ %s kg", reps, strconv.FormatFloat(weight, 'f', -1, 64))
}

func (m *Model) exerciseView() string {
	var s strings.Builder

	st := m.engine.State()
	plan := m.engine.Plan()

	ex, ok := m.engine.Current()
	if !ok {
		return ""
	}

	s.WriteString(m.styles.Exercising.Render(
		fmt.Sprintf("Exercise %d/%d", st.ExerciseIndex+1, len(plan.Exercises)),
	))
	s.WriteString(m.styles.Hint.Render(plan.RoutineName + " · " + plan.DayName))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Main.Render(m.opts.Names.Name(ex.ExerciseID)))
	s.WriteString("\n")

	if desc := m.description(ex.ExerciseID); desc != "" {
		s.WriteString(m.styles.Hint.Render(desc))
		s.WriteString("\n")
	}

	s.WriteString(m.styles.Secondary.Render(fmt.Sprintf(
		"Set %d of %d · %s",
		st.SetIndex+1,
		ex.SetCount,
		target(ex.Reps[st.SetIndex], ex.Weights[st.SetIndex]),
	)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.engine.Progress()))
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{
		m.keys.complete,
		m.keys.quit,
	}))

	return s.String()
}

// description returns how the exercise is performed, if the namer knows.
func (m *Model) description(id string) string {
	d, ok := m.opts.Names.(describer)
	if !ok {
		return ""
	}

	ex, err := d.Describe(id)
	if err != nil {
		return ""
	}

	return ex.Description
}

func (m *Model) nextView() string {
	next, ok := m.engine.PeekNext()
	if !ok {
		return ""
	}

	prefix := "Next set"
	if next.IsNewExercise {
		prefix = "Next exercise"
	}

	return fmt.Sprintf(
		"%s: %s · set %d · %s",
		prefix,
		m.opts.Names.Name(next.ExerciseID),
		next.SetNumber,
		target(next.Reps, next.Weight),
	)
}

func (m *Model) restView() string {
	var s strings.Builder

	st := m.engine.State()

	endsAt := m.opts.Now().Add(time.Duration(st.RestRemaining) * time.Second)

	s.WriteString(m.styles.Resting.Render("Rest"))
	s.WriteString(m.styles.Hint.Render(
		st.RestKind.String() + ", until " + endsAt.Format(timeutil.HourFormat(m.opts.TwentyFourHour)),
	))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Main.Render(timeutil.Clock(st.RestRemaining)))

	if st.CueFired {
		s.WriteString("  " + m.styles.Secondary.Render("Get ready!"))
	}

	if next := m.nextView(); next != "" {
		s.WriteString("\n\n")
		s.WriteString(m.styles.Secondary.Render(next))
	}

	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.engine.Progress()))
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{
		m.keys.skip,
		m.keys.quit,
	}))

	return s.String()
}

func (m *Model) promptView() string {
	var s strings.Builder

	s.WriteString(m.styles.Warning.Render("End workout?"))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Secondary.Render("This session will not be saved."))
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{
		m.keys.confirm,
		m.keys.cancel,
	}))

	return s.String()
}

func (m *Model) completeView() string {
	var s strings.Builder

	plan := m.engine.Plan()

	s.WriteString(m.styles.Exercising.Render("Done"))
	s.WriteString(m.styles.Main.Render(fmt.Sprintf(
		"%s complete: %d exercises",
		plan.DayName,
		len(plan.Exercises),
	)))

	if m.saveErr != nil {
		s.WriteString("\n\n")
		s.WriteString(m.styles.Warning.Render("Not saved"))
		s.WriteString(m.styles.Secondary.Render(
			"The workout could not be saved. Spotter will retry before it exits.",
		))
	}

	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.quit}))

	return s.String()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var view string

	switch {
	case m.guard.Prompting():
		view = m.promptView()
	case m.engine.State().Phase == session.Complete:
		view = m.completeView()
	case m.engine.State().Phase == session.Resting:
		view = m.restView()
	default:
		view = m.exerciseView()
	}

	return m.styles.Base.Render(view)
}
