// Package catalog provides the built-in exercise catalog
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"gopkg.in/yaml.v3"

	"github.com/homegym/spotter/internal/apperr"
	"github.com/homegym/spotter/internal/models"
	"github.com/homegym/spotter/internal/static"
)

// ErrUnknown is matched by the error returned for an exercise that is not in
// the catalog.
var ErrUnknown = &apperr.Error{
	Message: "unknown exercise: %s",
}

// Catalog is an immutable, ID-indexed list of exercises.
type Catalog struct {
	byID      map[string]models.Exercise
	exercises []models.Exercise
}

type catalogFile struct {
	Exercises []models.Exercise `yaml:"exercises"`
}

// Parse decodes a YAML catalog. Exercise IDs must be unique and non-empty.
func Parse(b []byte) (*Catalog, error) {
	var f catalogFile

	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decoding exercise catalog: %w", err)
	}

	c := &Catalog{
		byID:      make(map[string]models.Exercise, len(f.Exercises)),
		exercises: f.Exercises,
	}

	for _, ex := range f.Exercises {
		if ex.ID == "" {
			return nil, fmt.Errorf("exercise %q has no id", ex.Name)
		}

		if _, ok := c.byID[ex.ID]; ok {
			return nil, fmt.Errorf("duplicate exercise id: %s", ex.ID)
		}

		c.byID[ex.ID] = ex
	}

	return c, nil
}

// Load returns the catalog embedded in the binary.
func Load() (*Catalog, error) {
	b, err := static.Catalog()
	if err != nil {
		return nil, err
	}

	return Parse(b)
}

// Describe returns the exercise with the given ID.
func (c *Catalog) Describe(id string) (models.Exercise, error) {
	ex, ok := c.byID[id]
	if !ok {
		return models.Exercise{}, ErrUnknown.Fmt(id)
	}

	return ex, nil
}

// Name returns the display name for id, or id itself when it is not in the
// catalog.
func (c *Catalog) Name(id string) string {
	if ex, ok := c.byID[id]; ok {
		return ex.Name
	}

	return id
}

// List returns the exercises sorted by name. A non-empty muscle restricts the
// result to that muscle group.
func (c *Catalog) List(muscle string) []models.Exercise {
	muscle = strings.TrimSpace(muscle)

	result := make([]models.Exercise, 0, len(c.exercises))

	for _, ex := range c.exercises {
		if muscle != "" && !strings.EqualFold(ex.MuscleGroup, muscle) {
			continue
		}

		result = append(result, ex)
	}

	slices.SortFunc(result, func(a, b models.Exercise) int {
		if natural.Less(a.Name, b.Name) {
			return -1
		}

		if natural.Less(b.Name, a.Name) {
			return 1
		}

		return 0
	})

	return result
}

// MuscleGroups returns the distinct muscle groups in the catalog.
func (c *Catalog) MuscleGroups() []string {
	var groups []string

	for _, ex := range c.exercises {
		if !slices.Contains(groups, ex.MuscleGroup) {
			groups = append(groups, ex.MuscleGroup)
		}
	}

	slices.Sort(groups)

	return groups
}

// Validate checks that every exercise referenced by r exists.
func (c *Catalog) Validate(r *models.Routine) error {
	for _, day := range r.Days {
		for _, ex := range day.Exercises {
			if _, err := c.Describe(ex.ExerciseID); err != nil {
				return fmt.Errorf("day %q: %w", day.Name, err)
			}
		}
	}

	return nil
}
