package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/homegym/spotter/cue"
	"github.com/homegym/spotter/internal/catalog"
	"github.com/homegym/spotter/internal/config"
	"github.com/homegym/spotter/internal/osutil"
	"github.com/homegym/spotter/internal/static"
	"github.com/homegym/spotter/internal/timeutil"
	"github.com/homegym/spotter/internal/ui"
	"github.com/homegym/spotter/report"
	"github.com/homegym/spotter/session"
	"github.com/homegym/spotter/store"
	"github.com/homegym/spotter/timer"
	"github.com/homegym/spotter/workout"
)

const (
	envNoColor        = "NO_COLOR"
	envSpotterNoColor = "SPOTTER_NO_COLOR"
	envDebug          = "SPOTTER_DEBUG"
)

const (
	noWorkoutsMsg = "No workouts found for the specified time range"
	noLastMsg     = "No workouts recorded yet"
)

var logCloser io.Closer

// loadConfig reads the configuration and opens the store it selects. The
// settings kept in the store sit between the config file and the
// command-line flags.
func loadConfig(ctx *cli.Context) (*config.Config, store.Repository, error) {
	path := config.ConfigFilePath()

	var opts []config.Option

	if osutil.Interactive() {
		opts = append(opts, config.WithPromptConfig(path))
	}

	base, err := config.New(append(opts, config.WithViperConfig(path))...)
	if err != nil {
		return nil, nil, err
	}

	driver := base.Storage.Driver

	repo, err := store.Open(ctx.Context, driver, config.DBFilePath(driver))
	if err != nil {
		return nil, nil, err
	}

	settings, err := repo.GetSettings(ctx.Context)
	if err != nil {
		_ = repo.Close()
		return nil, nil, err
	}

	cfg, err := config.New(
		config.WithViperConfig(path),
		config.WithStoredSettings(settings),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		_ = repo.Close()
		return nil, nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, repo, nil
}

// startAction runs a workout for the chosen routine day.
func startAction(ctx *cli.Context) error {
	if !osutil.Interactive() {
		return errNotInteractive
	}

	cfg, repo, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer repo.Close()

	routine, err := chooseRoutine(ctx.Context, repo, cfg.CLI.RoutineID)
	if err != nil {
		return err
	}

	day, err := chooseDay(routine, cfg.CLI.DayIndex)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	player := cue.New(cue.Options{
		Logger:      slog.Default(),
		PreCueSound: cfg.Cues.PreCueSound,
		Volume:      cfg.Cues.Volume,
		Notify:      cfg.Notifications.Enabled,
	})

	defer player.Close()

	queue := store.NewQueue(repo, slog.Default())

	e, err := workout.New(queue, slog.Default()).Begin(
		ctx.Context,
		routine.ID,
		day,
		workout.Options{
			Cues:        player,
			Rest:        cfg.RestSeconds(),
			CuesEnabled: cfg.Cues.Enabled,
		},
	)
	if err != nil {
		return err
	}

	err = timer.Run(ctx.Context, e, timer.Options{
		Names:          cat,
		Notifier:       player,
		Logger:         slog.Default(),
		StatusFile:     config.StatusFilePath(),
		PostCmd:        cfg.Settings.Cmd,
		DarkTheme:      cfg.Display.DarkTheme,
		TwentyFourHour: cfg.Display.TwentyFourHour,
	})

	var saveErr *session.SaveError
	if err != nil && !errors.As(err, &saveErr) {
		return err
	}

	if saveErr != nil {
		if err := queue.Flush(ctx.Context); err != nil {
			return errWorkoutNotSaved.Wrap(err)
		}

		report.WorkoutSaved()
	}

	if e.State().Phase != session.Complete {
		return nil
	}

	return timer.AfterWorkout(e.Plan(), player, cfg.Settings.Cmd)
}

// historyRange resolves the --since and --until values. Both are rounded to
// whole days and either may be empty.
func historyRange(since, until string, now time.Time) (from, to time.Time, err error) {
	if since != "" {
		from, err = timeutil.FromStr(since, now)
		if err != nil {
			return from, to, errInvalidTime.Fmt("since").Wrap(err)
		}

		from = timeutil.RoundToStart(from)
	}

	if until != "" {
		to, err = timeutil.FromStr(until, now)
		if err != nil {
			return from, to, errInvalidTime.Fmt("until").Wrap(err)
		}

		to = timeutil.RoundToEnd(to)
	}

	return from, to, nil
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	pterm.Println(string(b))

	return nil
}

// historyAction prints the workouts completed in a time range.
func historyAction(ctx *cli.Context) error {
	since, until, err := historyRange(ctx.String("since"), ctx.String("until"), time.Now())
	if err != nil {
		return err
	}

	cfg, repo, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer repo.Close()

	records, err := repo.History(ctx.Context, since, until)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(records)
	}

	if len(records) == 0 {
		report.Info(noWorkoutsMsg)
		return nil
	}

	printHistoryTable(os.Stdout, records, cfg.Display.TwentyFourHour)

	return nil
}

// lastAction prints the most recent workout.
func lastAction(ctx *cli.Context) error {
	cfg, repo, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer repo.Close()

	rec, err := repo.LastWorkout(ctx.Context)
	if errors.Is(err, store.ErrNotFound) {
		report.Info(noLastMsg)
		return nil
	}

	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(rec)
	}

	pterm.Printfln(
		"%s: %s, %s (%d exercises)",
		rec.CompletedAt.Local().Format(dateFormat(cfg.Display.TwentyFourHour)),
		ui.Green(rec.RoutineName),
		rec.DayName,
		rec.ExercisesCompleted,
	)

	return nil
}

// exercisesAction lists the catalog.
func exercisesAction(ctx *cli.Context) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	muscle := ctx.String("muscle")

	exercises := cat.List(muscle)
	if len(exercises) == 0 {
		pterm.Info.Printfln(
			"No exercises for %q. Muscle groups: %v",
			muscle,
			cat.MuscleGroups(),
		)

		return nil
	}

	printExercisesTable(os.Stdout, exercises)

	return nil
}

// settingsAction edits the stored settings with a form.
func settingsAction(ctx *cli.Context) error {
	if !osutil.Interactive() {
		return errNotInteractive
	}

	_, repo, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer repo.Close()

	current, err := repo.GetSettings(ctx.Context)
	if err != nil {
		return err
	}

	updated, err := config.PromptSettings(current)
	if err != nil {
		return err
	}

	if err := repo.SaveSettings(ctx.Context, updated); err != nil {
		return err
	}

	report.SettingsSaved()

	return nil
}

// statusAction prints the status of the running workout.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus(config.StatusFilePath(), time.Now(), os.Stdout)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if SPOTTER_NO_COLOR is set
	if _, exists := os.LookupEnv(envSpotterNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := config.InitializePaths(); err != nil {
		return err
	}

	logCloser = setupLogging(config.LogFilePath())

	written, err := static.Install(config.Dir())
	if err != nil {
		slog.Warn("unable to install sample routines", slog.Any("error", err))
	}

	if len(written) > 0 {
		pterm.Info.Printfln(
			"Sample routines were saved to %s. Add one with 'spotter routine import <file>'",
			filepath.Dir(written[0]),
		)
	}

	slog.DebugContext(ctx.Context, "starting spotter", slog.String("version", config.Version))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting spotter")

	if logCloser != nil {
		if err := logCloser.Close(); err != nil {
			return fmt.Errorf("closing log file: %w", err)
		}
	}

	return nil
}
