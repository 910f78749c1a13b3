package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	keyRestBetweenSets      = "rest.between_sets"
	keyRestBetweenExercises = "rest.between_exercises"
	keyCuesEnabled          = "cues.enabled"
	keyPreCueSound          = "cues.pre_cue_sound"
	keyCueVolume            = "cues.volume"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyStorageDriver        = "storage.driver"
	keySessionCmd           = "settings.cmd"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A file holding the defaults is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper uses the current values of c as defaults, so that answers from
// the first-run prompt end up in the written file.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyRestBetweenSets, c.Rest.BetweenSets)
	v.SetDefault(keyRestBetweenExercises, c.Rest.BetweenExercises)
	v.SetDefault(keyCuesEnabled, c.Cues.Enabled)
	v.SetDefault(keyPreCueSound, c.Cues.PreCueSound)
	v.SetDefault(keyCueVolume, c.Cues.Volume)
	v.SetDefault(keyNotificationsEnabled, c.Notifications.Enabled)
	v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	v.SetDefault(keyTwentyFourHour, c.Display.TwentyFourHour)
	v.SetDefault(keyStorageDriver, c.Storage.Driver)
	v.SetDefault(keySessionCmd, c.Settings.Cmd)
}

// loadViperConfig copies the values held by Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	return nil
}
