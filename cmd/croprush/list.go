package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crop-rush/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all registered game modes.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	colorTitle.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	colorDim.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	colorDim.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %s  %s\n", colorInfo.Sprintf("%-*s", maxIDLen, g.ID), g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'croprush play <id>' to play a mode ('vs-ai' and 'solo' also work).")
}
