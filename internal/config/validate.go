package config

import (
	"errors"
	"os"
	"slices"

	"github.com/homegym/spotter/internal/models"
	"github.com/homegym/spotter/store"
)

const (
	minRestSeconds = 0
	maxRestSeconds = 600

	minVolume = -5.0
	maxVolume = 2.0
)

var drivers = []string{store.DriverBolt, store.DriverSQLite}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateRest("between sets", c.Rest.BetweenSets); err != nil {
		return err
	}

	if err := validateRest("between exercises", c.Rest.BetweenExercises); err != nil {
		return err
	}

	if !slices.Contains(drivers, c.Storage.Driver) {
		return errUnknownDriver.Fmt(drivers, c.Storage.Driver)
	}

	if c.Cues.Volume < minVolume || c.Cues.Volume > maxVolume {
		return errInvalidVolume.Fmt(minVolume, maxVolume, c.Cues.Volume)
	}

	if c.Cues.PreCueSound != "" {
		return validateSound(c.Cues.PreCueSound)
	}

	return nil
}

func validateRest(name string, secs int) error {
	if secs < minRestSeconds || secs > maxRestSeconds {
		return errInvalidRest.Fmt(name, minRestSeconds, maxRestSeconds, secs)
	}

	return nil
}

func validateSound(path string) error {
	if !models.IsSoundFile(path) {
		return errInvalidSoundFormat.Fmt(path)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return errMissingSound.Fmt(path)
	}

	return nil
}
