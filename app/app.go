package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/homegym/spotter/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the spotter app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "spotter",
		Usage: `
		Spotter runs your home-gym workouts from the terminal. It walks you
		through every set of a routine, times your rests and keeps a history
		of the workouts you complete.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start a workout (default)",
				Flags:  startFlags(),
				Action: startAction,
			},
			{
				Name:  "routine",
				Usage: "Manage your routines",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List all routines",
						Flags:  []cli.Flag{jsonFlag},
						Action: routineListAction,
					},
					{
						Name:      "show",
						Usage:     "Show the days and exercises of a routine",
						ArgsUsage: "<id or name>",
						Action:    routineShowAction,
					},
					{
						Name:      "import",
						Usage:     "Add routines from YAML files",
						ArgsUsage: "<file.yml>...",
						Action:    routineImportAction,
					},
					{
						Name:      "delete",
						Usage:     "Delete a routine permanently",
						ArgsUsage: "<id or name>",
						Flags:     []cli.Flag{yesFlag},
						Action:    routineDeleteAction,
					},
				},
			},
			{
				Name:   "exercises",
				Usage:  "List the exercises you can use in a routine",
				Flags:  []cli.Flag{muscleFlag},
				Action: exercisesAction,
			},
			{
				Name:   "history",
				Usage:  "List completed workouts",
				Flags:  []cli.Flag{sinceFlag, untilFlag, jsonFlag},
				Action: historyAction,
			},
			{
				Name:   "last",
				Usage:  "Print the last completed workout",
				Flags:  []cli.Flag{jsonFlag},
				Action: lastAction,
			},
			{
				Name:   "settings",
				Usage:  "Change your language, rest and cue preferences",
				Action: settingsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running workout",
				Action: statusAction,
			},
		},
		Flags:  append(startFlags(), noColorFlag),
		Action: startAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
