// platformer is a tile platformer played in the terminal.
//
// Usage:
//
//	platformer play [level]        - Play a level (menu when omitted)
//	platformer run <level>         - Simulate a level headless and print a summary
//	platformer levels              - List levels in the levels directory
//	platformer validate <file...>  - Check level files
//
// Global flags:
//
//	--fps <rate>         - Set frame rate of the viewer (default: 60)
//	--config <path>      - Physics config YAML
//	--preset <name>      - Physics preset: normal, floaty, heavy
//	--levels <dir>       - Level directory (default: ./levels)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/platformer/levels"
)

var (
	// Global flags
	flagFPS       int
	flagConfig    string
	flagPreset    string
	flagLevelsDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A tile platformer in your terminal",
	Long: `Run, jump and shoot through tile levels in the terminal.

Available commands:
  play      - Play a level, or pick one from a menu
  run       - Simulate a level without a terminal UI
  levels    - Show all levels in the levels directory
  validate  - Check level files for errors

Examples:
  platformer play
  platformer play caverns
  platformer play ./levels/vault.tmx --preset floaty
  platformer run intro --ticks 600 --right
  platformer validate levels/*.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Viewer frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Physics preset: normal, floaty, heavy")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "levels", "Directory to load levels from")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
}

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig reads the physics config and applies --preset.
func loadConfig() (config.PlatformerConfig, error) {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagPreset != "" {
		preset := config.ParsePreset(flagPreset)
		if preset == "" {
			return cfg, fmt.Errorf("unknown preset %q (want normal, floaty or heavy)", flagPreset)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// resolveLevel loads arg as a file path when it names an existing file,
// otherwise as a level ID inside the levels directory.
func resolveLevel(arg string) (levels.Level, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return levels.LoadFile(arg)
	}
	if filepath.Ext(arg) != "" {
		return levels.Level{}, fmt.Errorf("level file %s does not exist", arg)
	}
	loader := levels.NewLoader(flagLevelsDir)
	level, err := loader.LoadByID(arg)
	if err != nil {
		if ids, listErr := loader.ListIDs(); listErr == nil && len(ids) > 0 {
			return level, fmt.Errorf("%w (available: %s)", err, strings.Join(ids, ", "))
		}
		return level, err
	}
	return level, nil
}
