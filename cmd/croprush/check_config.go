package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crop-rush/internal/config"
)

var checkConfigCmd = &cobra.Command{
	Use:   "check-config <path>",
	Short: "Validate a level file",
	Long: `Parse and validate a JSON or YAML level file. Every problem found
is listed and the command exits with status 1 if the file is invalid.

Examples:
  croprush check-config ./configs/farm.yaml
  croprush check-config ./config.json`,
	Args: cobra.ExactArgs(1),
	Run:  runCheckConfig,
}

func runCheckConfig(_ *cobra.Command, args []string) {
	path := args[0]
	cfg, _, err := config.LoadFarm(path)
	if err != nil {
		colorErr.Fprintf(os.Stderr, "%s is invalid:\n%v\n", path, err)
		os.Exit(1)
	}

	colorInfo.Printf("%s is valid: %d level(s).\n", path, len(cfg.Levels))
	fmt.Println()
	printLevels(cfg)
}
