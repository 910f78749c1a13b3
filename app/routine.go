package app

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/maruel/natural"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/homegym/spotter/internal/catalog"
	"github.com/homegym/spotter/internal/models"
	"github.com/homegym/spotter/report"
	"github.com/homegym/spotter/store"
)

// parseRoutine decodes a routine from YAML.
func parseRoutine(b []byte) (*models.Routine, error) {
	var r models.Routine

	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}

	return &r, nil
}

// findRoutine picks the routine whose id equals query. Failing that, the
// routine whose name matches query regardless of case is returned.
func findRoutine(routines []models.Routine, query string) (*models.Routine, error) {
	query = strings.TrimSpace(query)

	for i := range routines {
		if routines[i].ID == query {
			return &routines[i], nil
		}
	}

	var match *models.Routine

	for i := range routines {
		if !strings.EqualFold(routines[i].Name, query) {
			continue
		}

		if match != nil {
			return nil, errAmbiguousRoutine.Fmt(query)
		}

		match = &routines[i]
	}

	if match == nil {
		return nil, errRoutineNotFound.Fmt(query)
	}

	return match, nil
}

func sortRoutines(routines []models.Routine) {
	slices.SortStableFunc(routines, func(a, b models.Routine) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}

		return strings.Compare(a.ID, b.ID)
	})
}

func listRoutines(ctx context.Context, repo store.Repository) ([]models.Routine, error) {
	routines, err := repo.ListRoutines(ctx)
	if err != nil {
		return nil, err
	}

	sortRoutines(routines)

	return routines, nil
}

// chooseRoutine resolves the routine to train. Without a query, the only
// routine is used or the user picks one.
func chooseRoutine(
	ctx context.Context,
	repo store.Repository,
	query string,
) (*models.Routine, error) {
	routines, err := listRoutines(ctx, repo)
	if err != nil {
		return nil, err
	}

	if len(routines) == 0 {
		return nil, errNoRoutines
	}

	if query != "" {
		return findRoutine(routines, query)
	}

	if len(routines) == 1 {
		return &routines[0], nil
	}

	opts := make([]huh.Option[int], len(routines))
	for i := range routines {
		opts[i] = huh.NewOption(routines[i].Name, i)
	}

	var selected int

	err = huh.NewSelect[int]().
		Title("Which routine?").
		Options(opts...).
		Value(&selected).
		Run()
	if err != nil {
		return nil, err
	}

	return &routines[selected], nil
}

// chooseDay resolves the day to train. A negative index asks the user when
// the routine has more than one day.
func chooseDay(r *models.Routine, index int) (int, error) {
	if index >= len(r.Days) {
		return 0, errDayOutOfRange.Fmt(r.Name, len(r.Days), index+1)
	}

	if index >= 0 {
		return index, nil
	}

	if len(r.Days) <= 1 {
		return 0, nil
	}

	opts := make([]huh.Option[int], len(r.Days))
	for i, d := range r.Days {
		opts[i] = huh.NewOption(fmt.Sprintf("%d. %s", i+1, d.Name), i)
	}

	var selected int

	err := huh.NewSelect[int]().
		Title("Which day?").
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

func routineListAction(ctx *cli.Context) error {
	_, repo, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer repo.Close()

	routines, err := listRoutines(ctx.Context, repo)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(routines)
	}

	if len(routines) == 0 {
		report.Info(errNoRoutines.Error())
		return nil
	}

	printRoutinesTable(os.Stdout, routines)

	return nil
}

func routineShowAction(ctx *cli.Context) error {
	query := ctx.Args().First()
	if query == "" {
		return errMissingArg.Fmt("routine id or name")
	}

	_, repo, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer repo.Close()

	routines, err := listRoutines(ctx.Context, repo)
	if err != nil {
		return err
	}

	r, err := findRoutine(routines, query)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	printRoutine(os.Stdout, r, cat)

	return nil
}

func routineImportAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errMissingArg.Fmt("routine file")
	}

	_, repo, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer repo.Close()

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	for _, path := range ctx.Args().Slice() {
		b, err := os.ReadFile(path)
		if err != nil {
			return errParseRoutine.Fmt(path).Wrap(err)
		}

		r, err := parseRoutine(b)
		if err != nil {
			return errParseRoutine.Fmt(path).Wrap(err)
		}

		if err := cat.Validate(r); err != nil {
			return errParseRoutine.Fmt(path).Wrap(err)
		}

		if err := repo.SaveRoutine(ctx.Context, r); err != nil {
			return err
		}

		report.RoutineImported(r.Name, r.ID)
	}

	return nil
}

func routineDeleteAction(ctx *cli.Context) error {
	query := ctx.Args().First()
	if query == "" {
		return errMissingArg.Fmt("routine id or name")
	}

	_, repo, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer repo.Close()

	routines, err := listRoutines(ctx.Context, repo)
	if err != nil {
		return err
	}

	r, err := findRoutine(routines, query)
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		confirmDeletion(os.Stdin, os.Stdout, []models.Routine{*r})
	}

	if err := repo.DeleteRoutine(ctx.Context, r.ID); err != nil {
		return err
	}

	report.RoutineDeleted(r.Name)

	return nil
}
