package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crop-rush/internal/config"
)

var flagSettingsSave bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or save user settings",
	Long: `Print the settings in effect after applying the settings file and
command-line flags. With --save they are written back to the settings
file and become the defaults for later runs.

Examples:
  croprush settings
  croprush settings --fps 30 --difficulty easy --save`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagSettingsSave, "save", false, "Write the effective settings to the settings file")
}

// effectiveSettings returns the settings built from the current flag values.
func effectiveSettings() config.Settings {
	return config.Settings{
		Game: config.GameSettings{
			FPS:        flagFPS,
			Difficulty: flagDifficulty,
			Seed:       flagSeed,
			Config:     flagConfig,
		},
		Storage: config.StorageSettings{DB: flagDBPath},
		Log:     config.LogSettings{Level: flagLogLevel, File: flagLogFile},
	}
}

func runSettings(_ *cobra.Command, _ []string) {
	path := flagSettings
	if path == "" {
		path = config.DefaultSettingsPath()
	}
	s := effectiveSettings()

	colorTitle.Printf("Settings (%s):\n", path)
	fmt.Println()
	fmt.Printf("  [game]     fps=%d difficulty=%s seed=%d config=%s\n",
		s.Game.FPS, s.Game.Difficulty, s.Game.Seed, s.Game.Config)
	fmt.Printf("  [storage]  db=%s\n", s.Storage.DB)
	fmt.Printf("  [log]      level=%s file=%s\n", s.Log.Level, s.Log.File)

	if !flagSettingsSave {
		return
	}
	if path == "" {
		colorErr.Fprintln(os.Stderr, "Error: no settings path (home directory unavailable)")
		os.Exit(1)
	}
	if err := config.SaveSettings(path, s); err != nil {
		colorErr.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("settings saved", "path", path)
	fmt.Println()
	colorInfo.Println("Saved.")
}
