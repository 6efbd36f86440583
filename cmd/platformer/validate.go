package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platformer/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files",
	Long: `Parse each level file and build a world from it with the current
physics config, so tunneling and spawn errors show up too.

Examples:
  platformer validate levels/intro.yaml
  platformer validate levels/*.yaml --preset heavy`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, path := range args {
		if err := validateFile(path, cfg); err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok    %s\n", path)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d level(s) failed\n", failed, len(args))
		os.Exit(1)
	}
}

func validateFile(path string, cfg config.PlatformerConfig) error {
	level, err := levels.LoadFile(path)
	if err != nil {
		return err
	}
	_, err = platformer.BuildWorld(&level.LevelData, cfg)
	return err
}
