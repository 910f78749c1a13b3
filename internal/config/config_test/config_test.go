package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/homegym/spotter/internal/config"
	"github.com/homegym/spotter/internal/models"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Rest: config.RestConfig{
			BetweenSets:      60,
			BetweenExercises: 90,
		},
		Cues: config.CuesConfig{
			Enabled: true,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Storage: config.StorageConfig{
			Driver: "bolt",
		},
		CLI: config.CLIConfig{
			DayIndex: -1,
		},
	}
}

const modifiedConfig = `rest:
  between_sets: 45
  between_exercises: 120
cues:
  enabled: false
  volume: -1.5
display:
  dark_theme: false
  24hr_clock: true
storage:
  driver: sqlite
settings:
  cmd: notify-send done
`

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)
	assert.FileExists(t, configPath)

	// the written file loads back to the same values
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(modifiedConfig), 0o644))

	want := defaultConfig()
	want.Rest = config.RestConfig{BetweenSets: 45, BetweenExercises: 120}
	want.Cues = config.CuesConfig{Enabled: false, Volume: -1.5}
	want.Display = config.DisplayConfig{DarkTheme: false, TwentyFourHour: true}
	want.Storage.Driver = "sqlite"
	want.Settings.Cmd = "notify-send done"

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
}

func TestStoredSettings(t *testing.T) {
	stored := models.Settings{
		Language:             "de",
		RestBetweenSets:      30,
		RestBetweenExercises: 150,
		CuesEnabled:          false,
	}

	t.Run("never saved", func(t *testing.T) {
		cfg, err := config.New(config.WithStoredSettings(stored))
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("saved", func(t *testing.T) {
		s := stored
		s.UpdatedAt = time.Date(2026, time.October, 1, 7, 0, 0, 0, time.UTC)

		cfg, err := config.New(config.WithStoredSettings(s))
		require.NoError(t, err)

		assert.Equal(t, 30, cfg.Rest.BetweenSets)
		assert.Equal(t, 150, cfg.Rest.BetweenExercises)
		assert.False(t, cfg.Cues.Enabled)
		assert.Equal(t, models.RestConfig{
			SecondsBetweenSets:      30,
			SecondsBetweenExercises: 150,
		}, cfg.RestSeconds())
	})
}

func startFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "routine", Aliases: []string{"r"}},
		&cli.IntFlag{Name: "day", Aliases: []string{"d"}},
		&cli.IntFlag{Name: "rest-sets"},
		&cli.IntFlag{Name: "rest-exercises"},
		&cli.BoolFlag{Name: "no-cues"},
		&cli.BoolFlag{Name: "disable-notification"},
		&cli.StringFlag{Name: "sound"},
		&cli.StringFlag{Name: "cmd"},
	}
}

// loadWithArgs runs a throwaway cli.App so that flags are parsed the same way
// the start command parses them.
func loadWithArgs(t *testing.T, args []string, opts ...config.Option) (*config.Config, error) {
	t.Helper()

	var (
		cfg     *config.Config
		loadErr error
	)

	app := &cli.App{
		Name:  "spotter",
		Flags: startFlags(),
		Action: func(ctx *cli.Context) error {
			cfg, loadErr = config.New(append(opts, config.WithCLIConfig(ctx))...)
			return nil
		},
	}

	require.NoError(t, app.Run(append([]string{"spotter"}, args...)))

	return cfg, loadErr
}

func TestPrecedence(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(modifiedConfig), 0o644))

	stored := models.Settings{
		UpdatedAt:            time.Date(2026, time.October, 1, 7, 0, 0, 0, time.UTC),
		RestBetweenSets:      75,
		RestBetweenExercises: 100,
		CuesEnabled:          true,
	}

	cfg, err := loadWithArgs(
		t,
		[]string{"--rest-exercises", "200", "-r", "abc", "-d", "2"},
		config.WithViperConfig(configPath),
		config.WithStoredSettings(stored),
	)
	require.NoError(t, err)

	assert.Equal(t, 75, cfg.Rest.BetweenSets)
	assert.Equal(t, 200, cfg.Rest.BetweenExercises)
	assert.True(t, cfg.Cues.Enabled)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, config.CLIConfig{RoutineID: "abc", DayIndex: 1}, cfg.CLI)
}

func TestCLIFlags(t *testing.T) {
	cfg, err := loadWithArgs(t, []string{"--no-cues", "--disable-notification", "--rest-sets", "0"})
	require.NoError(t, err)

	assert.False(t, cfg.Cues.Enabled)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, 0, cfg.Rest.BetweenSets)
	assert.Equal(t, -1, cfg.CLI.DayIndex)
}

func TestValidate(t *testing.T) {
	sound := filepath.Join(t.TempDir(), "chime.ogg")
	require.NoError(t, os.WriteFile(sound, []byte("ogg"), 0o644))

	testCases := []struct {
		Name    string
		Args    []string
		Modify  func(c *config.Config)
		WantErr bool
	}{
		{Name: "rest too long", Args: []string{"--rest-sets", "601"}, WantErr: true},
		{Name: "negative rest", Args: []string{"--rest-exercises", "-5"}, WantErr: true},
		{Name: "negative day", Args: []string{"--day", "-1"}, WantErr: true},
		{Name: "wrong sound format", Args: []string{"--sound", "chime.txt"}, WantErr: true},
		{Name: "missing sound", Args: []string{"--sound", "nope.mp3"}, WantErr: true},
		{Name: "custom sound", Args: []string{"--sound", sound}},
		{Name: "sound off", Args: []string{"--sound", "off"}},
		{
			Name:    "unknown driver",
			Modify:  func(c *config.Config) { c.Storage.Driver = "postgres" },
			WantErr: true,
		},
		{
			Name:    "volume too loud",
			Modify:  func(c *config.Config) { c.Cues.Volume = 3 },
			WantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var opts []config.Option

			if tc.Modify != nil {
				opts = append(opts, func(c *config.Config) error {
					tc.Modify(c)
					return nil
				})
			}

			_, err := loadWithArgs(t, tc.Args, opts...)
			if tc.WantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestDBFilePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("SPOTTER_ENV", "")
	xdg.Reload()

	require.NoError(t, config.InitializePaths())

	assert.Equal(t, "spotter.db", filepath.Base(config.DBFilePath("bolt")))
	assert.Equal(t, "spotter.sqlite", filepath.Base(config.DBFilePath("sqlite")))
	assert.Equal(t, "config.yml", filepath.Base(config.ConfigFilePath()))
}
