package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/homegym/spotter/internal/catalog"
	"github.com/homegym/spotter/internal/models"
	"github.com/homegym/spotter/internal/ui"
)

func dateFormat(twentyFourHour bool) string {
	if twentyFourHour {
		return "Jan 02, 2006 15:04"
	}

	return "Jan 02, 2006 03:04 PM"
}

// printHistoryTable prints completed workouts as a table.
func printHistoryTable(
	w io.Writer,
	records []models.CompletionRecord,
	twentyFourHour bool,
) {
	tableBody := make([][]string, len(records))

	for i := range records {
		rec := records[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			rec.CompletedAt.Local().Format(dateFormat(twentyFourHour)),
			ui.Green(rec.RoutineName),
			rec.DayName,
			fmt.Sprintf("%d", rec.ExercisesCompleted),
		}
	}

	ui.PrintTable(w, []string{"#", "DATE", "ROUTINE", "DAY", "EXERCISES"}, tableBody)
}

func printRoutinesTable(w io.Writer, routines []models.Routine) {
	tableBody := make([][]string, len(routines))

	for i := range routines {
		r := routines[i]

		days := make([]string, len(r.Days))
		for j, d := range r.Days {
			days[j] = d.Name
		}

		tableBody[i] = []string{
			ui.Cyan(r.ID),
			r.Name,
			strings.Join(days, " · "),
		}
	}

	ui.PrintTable(w, []string{"ID", "NAME", "DAYS"}, tableBody)
}

func printExercisesTable(w io.Writer, exercises []models.Exercise) {
	tableBody := make([][]string, len(exercises))

	for i, ex := range exercises {
		tableBody[i] = []string{
			ui.Cyan(ex.ID),
			ex.Name,
			ex.MuscleGroup,
			ex.Equipment,
		}
	}

	ui.PrintTable(w, []string{"ID", "NAME", "MUSCLE GROUP", "EQUIPMENT"}, tableBody)
}

func setTargets(ex models.PlannedExercise) string {
	n := ex.Normalise()

	targets := make([]string, n.SetCount)

	for i := range n.SetCount {
		if n.Weights[i] > 0 {
			targets[i] = fmt.Sprintf("%d@%g", n.Reps[i], n.Weights[i])
			continue
		}

		targets[i] = fmt.Sprintf("%d", n.Reps[i])
	}

	return strings.Join(targets, ", ")
}

// printRoutine prints every day of r with its exercises and set targets.
func printRoutine(w io.Writer, r *models.Routine, cat *catalog.Catalog) {
	fmt.Fprintf(w, "%s %s\n", ui.Highlight(r.Name), ui.Cyan("("+r.ID+")"))

	if !r.UpdatedAt.IsZero() {
		fmt.Fprintf(w, "Updated %s\n", r.UpdatedAt.Local().Format(dateFormat(false)))
	}

	for i, d := range r.Days {
		fmt.Fprintf(w, "\n%s\n", ui.Green(fmt.Sprintf("Day %d: %s", i+1, d.Name)))

		var tableBody [][]string

		for _, ex := range d.Exercises {
			if ex.SetCount < 1 {
				continue
			}

			tableBody = append(tableBody, []string{
				cat.Name(ex.ExerciseID),
				fmt.Sprintf("%d", ex.SetCount),
				setTargets(ex),
			})
		}

		ui.PrintTable(w, []string{"EXERCISE", "SETS", "REPS@KG"}, tableBody)
	}
}
