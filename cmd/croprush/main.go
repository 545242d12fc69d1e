// croprush is a terminal farming arcade game: race an AI farmer to harvest
// crops before the level timer runs out.
//
// Usage:
//
//	croprush play [mode]          - Play vs the AI (default) or solo
//	croprush menu                 - Start menu to pick a mode interactively
//	croprush list                 - List available modes
//	croprush scores <mode>        - Show best results for a mode
//	croprush levels               - Print the resolved level table
//	croprush check-config <path>  - Validate a level file
//	croprush settings             - Show or save user settings
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.croprush/scores.db)
//	--config <path>        - Level file (JSON or YAML)
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Write logs to a file (the TUI owns the terminal)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crop-rush/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/crop-rush/internal/games/farm"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagSettings   string

	logger  = log.New(io.Discard)
	logFile *os.File
)

var (
	colorTitle = color.New(color.FgGreen, color.Bold)
	colorInfo  = color.New(color.FgHiBlue)
	colorWarn  = color.New(color.FgYellow)
	colorErr   = color.New(color.FgRed)
	colorDim   = color.New(color.FgHiBlack)
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		colorErr.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "croprush",
	Short: "Crop Rush - race an AI farmer to the harvest",
	Long: `Crop Rush is a terminal farming arcade game. Move your farmer around
the field, collect crops before the AI farmer does and reach each level's
goal before the timer runs out. Watch out for scarecrows and crows.

Available commands:
  play          - Play a mode directly
  menu          - Interactive mode picker
  list          - Show all available modes
  scores        - View best results
  levels        - Print the level table in effect
  check-config  - Validate a level file
  settings      - Show or save user settings

Examples:
  croprush play
  croprush play solo --difficulty easy
  croprush menu
  croprush scores croprush
  croprush check-config ./configs/farm.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.croprush/scores.db", "Path to results database")
	pf.StringVar(&flagConfig, "config", "", "Path to a level file (JSON or YAML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagSettings, "settings", "", "Settings file (default ~/.croprush/settings.ini)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkConfigCmd)
	rootCmd.AddCommand(settingsCmd)
}

// setup applies user settings to flags that were not given and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	path := flagSettings
	if path == "" {
		path = config.DefaultSettingsPath()
	}
	s, err := config.LoadSettings(path)
	if err != nil {
		colorWarn.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	applySettings(cmd, s)

	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	return setupLogger()
}

func applySettings(cmd *cobra.Command, s config.Settings) {
	changed := func(name string) bool {
		f := cmd.Flag(name)
		return f != nil && f.Changed
	}
	if !changed("fps") && s.Game.FPS > 0 {
		flagFPS = s.Game.FPS
	}
	if !changed("seed") && s.Game.Seed != 0 {
		flagSeed = s.Game.Seed
	}
	if !changed("difficulty") {
		flagDifficulty = s.Game.Difficulty
	}
	if !changed("config") && s.Game.Config != "" {
		flagConfig = s.Game.Config
	}
	if !changed("db") && s.Storage.DB != "" {
		flagDBPath = s.Storage.DB
	}
	if !changed("log-level") && s.Log.Level != "" {
		flagLogLevel = s.Log.Level
	}
	if !changed("log-file") && s.Log.File != "" {
		flagLogFile = s.Log.File
	}
}

// setupLogger writes to --log-file when set; otherwise logs are discarded
// because the TUI owns the terminal.
func setupLogger() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "croprush",
		Level:           level,
	})
	return nil
}
