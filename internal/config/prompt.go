package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/homegym/spotter/internal/models"
)

const asciiLogo = `
███████╗██████╗  ██████╗ ████████╗████████╗███████╗██████╗
██╔════╝██╔══██╗██╔═══██╗╚══██╔══╝╚══██╔══╝██╔════╝██╔══██╗
███████╗██████╔╝██║   ██║   ██║      ██║   █████╗  ██████╔╝
╚════██║██╔═══╝ ██║   ██║   ██║      ██║   ██╔══╝  ██╔══██╗
███████║██║     ╚██████╔╝   ██║      ██║   ███████╗██║  ██║
╚══════╝╚═╝      ╚═════╝    ╚═╝      ╚═╝   ╚══════╝╚═╝  ╚═╝`

// Languages offered by the settings form.
var Languages = map[string]string{
	"en": "English",
	"de": "Deutsch",
	"fr": "Français",
	"es": "Español",
}

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	RestBetweenSets      int
	RestBetweenExercises int
	CuesEnabled          bool
}

// WithPromptConfig returns an Option that asks for the rest durations the
// first time spotter runs, before the config file exists.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		return applyPromptOptions(c, opts)
	}
}

func restGroup(sets, exercises *int) *huh.Group {
	return huh.NewGroup(
		huh.NewSelect[int]().
			Title("Rest between sets").
			Options(
				huh.NewOption("30 seconds", 30),
				huh.NewOption("45 seconds", 45),
				huh.NewOption("60 seconds", 60),
				huh.NewOption("90 seconds", 90),
				huh.NewOption("2 minutes", 120),
				huh.NewOption("3 minutes", 180),
			).
			Value(sets),
		huh.NewSelect[int]().
			Title("Rest between exercises").
			Options(
				huh.NewOption("60 seconds", 60),
				huh.NewOption("90 seconds", 90),
				huh.NewOption("2 minutes", 120),
				huh.NewOption("3 minutes", 180),
				huh.NewOption("5 minutes", 300),
			).
			Value(exercises),
	)
}

// promptUser handles the interactive first-run configuration.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		RestBetweenSets:      models.DefaultSecondsBetweenSets,
		RestBetweenExercises: models.DefaultSecondsBetweenExercises,
		CuesEnabled:          true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Spotter for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'spotter edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		restGroup(&opts.RestBetweenSets, &opts.RestBetweenExercises),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play audible cues while resting?").
				Value(&opts.CuesEnabled),
		),
	)

	if err := form.WithInput(Stdin).WithOutput(Stdout).Run(); err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Rest.BetweenSets = opts.RestBetweenSets
	c.Rest.BetweenExercises = opts.RestBetweenExercises
	c.Cues.Enabled = opts.CuesEnabled

	return nil
}

// PromptSettings shows the settings form prefilled with current and returns
// the edited settings.
func PromptSettings(current models.Settings) (models.Settings, error) {
	s := current

	langs := make([]huh.Option[string], 0, len(Languages))
	for _, code := range []string{"en", "de", "fr", "es"} {
		langs = append(langs, huh.NewOption(Languages[code], code))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Language").
				Options(langs...).
				Value(&s.Language),
		),
		restGroup(&s.RestBetweenSets, &s.RestBetweenExercises),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play audible cues while resting?").
				Value(&s.CuesEnabled),
		),
	)

	if err := form.WithInput(Stdin).WithOutput(Stdout).Run(); err != nil {
		return current, fmt.Errorf("form interaction failed: %w", err)
	}

	return s, nil
}
