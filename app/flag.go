package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	routineFlag = &cli.StringFlag{
		Name:    "routine",
		Aliases: []string{"r"},
		Usage:   "The routine to train, by id or name. You are asked to pick one if omitted",
	}

	dayFlag = &cli.IntFlag{
		Name:    "day",
		Aliases: []string{"d"},
		Usage:   "The day of the routine to train, starting from 1. You are asked to pick one if omitted",
	}

	restSetsFlag = &cli.IntFlag{
		Name:  "rest-sets",
		Usage: "Rest between sets in seconds (default: 60)",
	}

	restExercisesFlag = &cli.IntFlag{
		Name:  "rest-exercises",
		Usage: "Rest between exercises in seconds (default: 90)",
	}

	noCuesFlag = &cli.BoolFlag{
		Name:  "no-cues",
		Usage: "Do not play audible cues while resting",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears after a workout is completed",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "An mp3, ogg, flac or wav file to play as the get-ready cue. Use 'off' for the built-in chime",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after a workout is completed",
	}

	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"s"},
		Usage:   "Only show workouts completed after this time (e.g. '2 weeks ago', 'last monday')",
	}

	untilFlag = &cli.StringFlag{
		Name:    "until",
		Aliases: []string{"u"},
		Usage:   "Only show workouts completed before this time",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	muscleFlag = &cli.StringFlag{
		Name:    "muscle",
		Aliases: []string{"m"},
		Usage:   "Only list exercises for this muscle group",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}
)

func startFlags() []cli.Flag {
	return []cli.Flag{
		routineFlag,
		dayFlag,
		restSetsFlag,
		restExercisesFlag,
		noCuesFlag,
		disableNotificationFlag,
		soundFlag,
		sessionCmdFlag,
	}
}
