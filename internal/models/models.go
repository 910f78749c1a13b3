// Package models defines the routines, plans and records shared by the
// session engine and the routine store
package models

import (
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const (
	// DefaultReps is used when a planned set has no rep target.
	DefaultReps = 10
	// DefaultWeight is used when a planned set has no weight target.
	DefaultWeight = 0
)

const (
	DefaultSecondsBetweenSets      = 60
	DefaultSecondsBetweenExercises = 90
)

// PlannedExercise is one exercise of a training day with per-set targets.
type PlannedExercise struct {
	ExerciseID string    `json:"exercise_id" yaml:"exercise"`
	Reps       []int     `json:"reps"        yaml:"reps"`
	Weights    []float64 `json:"weights"     yaml:"weights"`
	SetCount   int       `json:"sets"        yaml:"sets"`
}

// Normalise returns a copy whose reps and weights have exactly SetCount
// entries. Missing targets are filled with DefaultReps and DefaultWeight.
func (p PlannedExercise) Normalise() PlannedExercise {
	n := PlannedExercise{
		ExerciseID: p.ExerciseID,
		SetCount:   p.SetCount,
		Reps:       make([]int, p.SetCount),
		Weights:    make([]float64, p.SetCount),
	}

	for i := range p.SetCount {
		n.Reps[i] = DefaultReps
		if i < len(p.Reps) {
			n.Reps[i] = p.Reps[i]
		}

		n.Weights[i] = DefaultWeight
		if i < len(p.Weights) && p.Weights[i] >= 0 {
			n.Weights[i] = p.Weights[i]
		}
	}

	return n
}

// TrainingPlan is the read-only input of a workout session.
type TrainingPlan struct {
	RoutineID   string            `json:"routine_id"`
	RoutineName string            `json:"routine_name"`
	DayName     string            `json:"day_name"`
	Exercises   []PlannedExercise `json:"exercises"`
	DayIndex    int               `json:"day_index"`
}

// Normalise drops exercises without sets and normalises the remaining ones.
func (p TrainingPlan) Normalise() TrainingPlan {
	n := p
	n.Exercises = make([]PlannedExercise, 0, len(p.Exercises))

	for _, ex := range p.Exercises {
		if ex.SetCount < 1 {
			continue
		}

		n.Exercises = append(n.Exercises, ex.Normalise())
	}

	return n
}

// TotalSets returns the number of sets across all exercises.
func (p TrainingPlan) TotalSets() int {
	var total int
	for _, ex := range p.Exercises {
		total += ex.SetCount
	}

	return total
}

// Day is a named, ordered list of planned exercises.
type Day struct {
	Name      string            `json:"name"      yaml:"name"`
	Exercises []PlannedExercise `json:"exercises" yaml:"exercises"`
}

// Routine is a named collection of training days.
type Routine struct {
	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
	ID        string    `json:"id"         yaml:"id,omitempty"`
	Name      string    `json:"name"       yaml:"name"`
	Days      []Day     `json:"days"       yaml:"days"`
}

// Plan builds the training plan for the day at dayIndex. The boolean is false
// if the day does not exist.
func (r *Routine) Plan(dayIndex int) (TrainingPlan, bool) {
	if dayIndex < 0 || dayIndex >= len(r.Days) {
		return TrainingPlan{}, false
	}

	day := r.Days[dayIndex]

	exercises := make([]PlannedExercise, len(day.Exercises))
	copy(exercises, day.Exercises)

	return TrainingPlan{
		RoutineID:   r.ID,
		RoutineName: r.Name,
		DayIndex:    dayIndex,
		DayName:     day.Name,
		Exercises:   exercises,
	}, true
}

// RestConfig holds the rest durations for a session.
type RestConfig struct {
	SecondsBetweenSets      int `json:"seconds_between_sets"`
	SecondsBetweenExercises int `json:"seconds_between_exercises"`
}

// DefaultRestConfig returns the default rest durations.
func DefaultRestConfig() RestConfig {
	return RestConfig{
		SecondsBetweenSets:      DefaultSecondsBetweenSets,
		SecondsBetweenExercises: DefaultSecondsBetweenExercises,
	}
}

// CompletionRecord is written once for every completed session.
type CompletionRecord struct {
	CompletedAt        time.Time `json:"completed_at"`
	ID                 string    `json:"id"`
	RoutineID          string    `json:"routine_id"`
	RoutineName        string    `json:"routine_name"`
	DayName            string    `json:"day_name"`
	DayIndex           int       `json:"day_index"`
	ExercisesCompleted int       `json:"exercises_completed"`
}

// Settings are the user preferences kept by the routine store. UpdatedAt is
// zero until the user saves them for the first time.
type Settings struct {
	UpdatedAt            time.Time `json:"updated_at"`
	Language             string    `json:"language"`
	RestBetweenSets      int       `json:"rest_between_sets"`
	RestBetweenExercises int       `json:"rest_between_exercises"`
	CuesEnabled          bool      `json:"cues_enabled"`
}

// DefaultSettings returns the settings used before the user changes any.
func DefaultSettings() Settings {
	return Settings{
		Language:             "en",
		RestBetweenSets:      DefaultSecondsBetweenSets,
		RestBetweenExercises: DefaultSecondsBetweenExercises,
		CuesEnabled:          true,
	}
}

// Rest returns the rest durations held by the settings.
func (s Settings) Rest() RestConfig {
	return RestConfig{
		SecondsBetweenSets:      s.RestBetweenSets,
		SecondsBetweenExercises: s.RestBetweenExercises,
	}
}

// Exercise is an entry of the exercise catalog.
type Exercise struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	MuscleGroup string `json:"muscle_group" yaml:"muscle_group"`
	Equipment   string `json:"equipment"   yaml:"equipment"`
	Description string `json:"description" yaml:"description"`
}

// SoundExtensions lists the file types a custom cue sound may use.
var SoundExtensions = []string{".mp3", ".ogg", ".flac", ".wav"}

// IsSoundFile reports whether path has one of the SoundExtensions, ignoring
// case.
func IsSoundFile(path string) bool {
	return slices.Contains(SoundExtensions, strings.ToLower(filepath.Ext(path)))
}
