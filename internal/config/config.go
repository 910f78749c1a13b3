// Package config loads the spotter configuration from the config file, the
// stored settings and command-line flags
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/homegym/spotter/internal/models"
	"github.com/homegym/spotter/store"
)

type (
	// Config holds all configuration settings
	Config struct {
		Settings      SettingsConfig     `mapstructure:"settings"`
		Cues          CuesConfig         `mapstructure:"cues"`
		Storage       StorageConfig      `mapstructure:"storage"`
		CLI           CLIConfig          `mapstructure:"-"`
		Rest          RestConfig         `mapstructure:"rest"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// RestConfig holds the rest durations in seconds
	RestConfig struct {
		BetweenSets      int `mapstructure:"between_sets"`
		BetweenExercises int `mapstructure:"between_exercises"`
	}

	// CuesConfig holds the audible cue settings
	CuesConfig struct {
		PreCueSound string  `mapstructure:"pre_cue_sound"`
		Volume      float64 `mapstructure:"volume"`
		Enabled     bool    `mapstructure:"enabled"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// StorageConfig selects the database backend
	StorageConfig struct {
		Driver string `mapstructure:"driver"`
	}

	// SettingsConfig holds miscellaneous settings
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	// CLIConfig holds options that only exist on the command line
	CLIConfig struct {
		RoutineID string
		// DayIndex is -1 when no day was chosen.
		DayIndex int
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	configDir      = "spotter"
	configFileName = "config.yml"
	dbFileName     = "spotter.db"
	statusFileName = "status.json"
	logFileName    = "spotter.log"
	dbFilePath     string
	configFilePath string
	statusFilePath string
	logFilePath    string
)

// Stdin and Stdout are used by the interactive forms.
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

func Dir() string {
	return configDir
}

// DBFilePath returns the database location for the storage driver.
func DBFilePath(driver string) string {
	if driver == store.DriverSQLite {
		return strings.TrimSuffix(dbFilePath, filepath.Ext(dbFilePath)) + ".sqlite"
	}

	return dbFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the file locations under the XDG directories.
// SPOTTER_ENV adds a suffix to every file name so that separate environments
// do not share data.
func InitializePaths() error {
	if env := strings.TrimSpace(os.Getenv("SPOTTER_ENV")); env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("spotter_%s.db", env)
		statusFileName = fmt.Sprintf("status_%s.json", env)
		logFileName = fmt.Sprintf("spotter_%s.log", env)
	}

	var err error

	configFilePath, err = xdg.ConfigFile(filepath.Join(configDir, configFileName))
	if err != nil {
		return errInitPaths.Wrap(err)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		return errInitPaths.Wrap(err)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	statusFilePath = filepath.Join(dataDir, statusFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)

	return nil
}

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		Rest: RestConfig{
			BetweenSets:      models.DefaultSecondsBetweenSets,
			BetweenExercises: models.DefaultSecondsBetweenExercises,
		},
		Cues: CuesConfig{
			Enabled: true,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
		Storage: StorageConfig{
			Driver: store.DriverBolt,
		},
		CLI: CLIConfig{
			DayIndex: -1,
		},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// RestSeconds converts the rest durations for the session engine.
func (c *Config) RestSeconds() models.RestConfig {
	return models.RestConfig{
		SecondsBetweenSets:      c.Rest.BetweenSets,
		SecondsBetweenExercises: c.Rest.BetweenExercises,
	}
}

// WithStoredSettings returns an Option that applies the settings saved from
// the settings form. Settings that were never saved are ignored.
func WithStoredSettings(s models.Settings) Option {
	return func(c *Config) error {
		if s.UpdatedAt.IsZero() {
			return nil
		}

		c.Rest.BetweenSets = s.RestBetweenSets
		c.Rest.BetweenExercises = s.RestBetweenExercises
		c.Cues.Enabled = s.CuesEnabled

		return nil
	}
}
