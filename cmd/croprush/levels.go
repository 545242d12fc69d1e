package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crop-rush/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level table in effect",
	Long: `Load the level file the game would use (honouring --config and
--difficulty) and print its levels, actors and crop weights.

Examples:
  croprush levels
  croprush levels --difficulty hard
  croprush levels --config ./my-farm.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, source, err := config.LoadFarm(flagConfig)
	if err != nil {
		colorErr.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		colorErr.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyFarmPreset(&cfg, preset)

	colorTitle.Printf("Levels from %s (%s):\n", source, preset)
	fmt.Println()
	printLevels(cfg)
}

func printLevels(cfg config.FarmConfig) {
	fmt.Printf("  Arena   %gx%g\n", cfg.Arena.Width, cfg.Arena.Height)
	fmt.Printf("  Farmer  speed %g  size %g\n", cfg.Farmer.Speed, cfg.Farmer.Size)
	if cfg.AI.IsEnabled() {
		fmt.Printf("  AI      speed %g  size %g\n", cfg.AI.Speed, cfg.AI.Size)
	} else {
		colorDim.Println("  AI      disabled")
	}

	names := make([]string, 0, len(cfg.Crops.Distribution))
	for name := range cfg.Crops.Distribution {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Print("  Crops  ")
	for _, name := range names {
		fmt.Printf(" %s=%g", name, cfg.Crops.Distribution[name])
	}
	fmt.Println()
	fmt.Println()

	colorDim.Printf("  %-5s  %4s  %6s  %6s  %6s  %6s  %9s  %5s\n",
		"Level", "Goal", "Time", "Spawn", "Decay", "Floor", "Obstacles", "Crows")
	colorDim.Printf("  %-5s  %4s  %6s  %6s  %6s  %6s  %9s  %5s\n",
		"-----", "----", "----", "-----", "-----", "-----", "---------", "-----")
	for i, l := range cfg.Levels {
		fmt.Printf("  %-5d  %4d  %6.1f  %6.2f  %6.3f  %6.2f  %9d  %5d\n",
			i+1, l.Goal, l.Time, l.SpawnEvery, l.Decay(), l.Floor(), len(l.Obstacles), len(l.Crows))
	}
}
