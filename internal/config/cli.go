package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	RestBetweenSets      *int
	RestBetweenExercises *int
	RoutineID            string
	PreCueSound          string
	SessionCmd           string
	Day                  int
	DisableCues          bool
	DisableNotify        bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			RoutineID:     ctx.String("routine"),
			Day:           ctx.Int("day"),
			PreCueSound:   ctx.String("sound"),
			SessionCmd:    ctx.String("cmd"),
			DisableCues:   ctx.Bool("no-cues"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		if ctx.IsSet("rest-sets") {
			v := ctx.Int("rest-sets")
			opts.RestBetweenSets = &v
		}

		if ctx.IsSet("rest-exercises") {
			v := ctx.Int("rest-exercises")
			opts.RestBetweenExercises = &v
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config. Day is one-based on the
// command line and zero means unset.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.RestBetweenSets != nil {
		if *opts.RestBetweenSets < 0 {
			return errInvalidCLIRest.Fmt("rest-sets", *opts.RestBetweenSets)
		}

		c.Rest.BetweenSets = *opts.RestBetweenSets
	}

	if opts.RestBetweenExercises != nil {
		if *opts.RestBetweenExercises < 0 {
			return errInvalidCLIRest.Fmt("rest-exercises", *opts.RestBetweenExercises)
		}

		c.Rest.BetweenExercises = *opts.RestBetweenExercises
	}

	c.CLI.RoutineID = strings.TrimSpace(opts.RoutineID)

	if opts.Day < 0 {
		return errInvalidDay.Fmt(opts.Day)
	}

	if opts.Day > 0 {
		c.CLI.DayIndex = opts.Day - 1
	}

	if opts.DisableCues {
		c.Cues.Enabled = false
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	switch opts.PreCueSound {
	case "":
	case "off":
		c.Cues.PreCueSound = ""
	default:
		c.Cues.PreCueSound = opts.PreCueSound
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	return nil
}
