package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crop-rush/internal/core"
	"github.com/vovakirdan/crop-rush/internal/games/farm"
	"github.com/vovakirdan/crop-rush/internal/platform/tui"
	"github.com/vovakirdan/crop-rush/internal/registry"
	"github.com/vovakirdan/crop-rush/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. The mode is "vs-ai" (default), "solo" or a mode ID
from 'croprush list'.

Controls:
  Arrows/WASD  - Move
  Enter/Space  - Start, next level after a win, retry after a loss
  P            - Pause
  R            - Back to the start screen
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower AI, more time
  normal - Level file as written
  hard   - Faster AI, less time
  fixed  - Level file as written

Examples:
  croprush play
  croprush play solo
  croprush play --difficulty hard
  croprush play --config ./my-farm.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// modeAliases maps friendly names to registered game IDs.
var modeAliases = map[string]string{
	"":      "croprush",
	"ai":    "croprush",
	"vs-ai": "croprush",
	"vsai":  "croprush",
	"solo":  "croprush_solo",
}

// resolveMode turns a mode argument into a registered game ID.
func resolveMode(arg string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(arg))
	if alias, ok := modeAliases[id]; ok {
		id = alias
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown mode %q (run 'croprush list')", arg)
	}
	return id, nil
}

func runPlay(_ *cobra.Command, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := resolveMode(arg)
	if err != nil {
		colorErr.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	// Set config path and difficulty before creation
	farm.SetConfigPath(flagConfig)
	farm.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		colorErr.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	// Run the game
	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		colorErr.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the results database. The game works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		colorWarn.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
