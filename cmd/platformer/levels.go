package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platformer/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows every level file found under the levels directory.
Files that fail to parse are skipped; use 'platformer validate' to see why.`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	all, err := levels.NewLoader(flagLevelsDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Printf("No levels found in %s.\n", flagLevelsDir)
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "File")
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "----")

	for _, l := range all {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, l.ID, maxNameLen, l.Name, size, l.FilePath)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a level.")
}
