package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/platformer/levels"
)

var (
	flagTheme   string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level. The argument is a level ID from the levels
directory or a path to a level file. Without an argument a menu lists the
levels in the levels directory; quitting a level returns to the menu.

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump
  F/X, mouse click - Fire
  P/Esc            - Pause
  R                - Restart the level
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  platformer play
  platformer play intro
  platformer play ./levels/vault.tmx --preset heavy
  platformer play caverns --log-file play.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTheme, "theme", "default", "Colour theme: default, mono")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the screen is taken by the game)")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme, ok := tui.ThemeByName(flagTheme)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", flagTheme)
		os.Exit(1)
	}
	tui.SetTheme(theme)

	logger, closeLog, err := playLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	if len(args) == 1 {
		level, err := resolveLevel(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'platformer levels' to see available levels.")
			os.Exit(1)
		}
		if err := playLevel(level, cfg, rt, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running level: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runLevelMenu(cfg, rt, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runLevelMenu shows the level picker until the user quits it.
func runLevelMenu(cfg config.PlatformerConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	all, err := levels.NewLoader(flagLevelsDir).LoadAll()
	if err != nil {
		return err
	}

	items := make([]tui.MenuItem, len(all))
	byID := make(map[string]levels.Level, len(all))
	for i, l := range all {
		items[i] = tui.MenuItem{LevelID: l.ID, Title: l.Name, Width: l.Width, Height: l.Height}
		byID[l.ID] = l
	}

	// Menu loop
	for {
		result, err := tui.RunMenu(items, rt)
		if err != nil {
			return err
		}
		rt = result.Config
		if result.Quit {
			return nil
		}

		if err := playLevel(byID[result.LevelID], cfg, rt, logger); err != nil {
			// A broken level should not end the session.
			logger.Error("level failed", "level", result.LevelID, "err", err)
		}
	}
}

func playLevel(level levels.Level, cfg config.PlatformerConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	logger.Info("starting level", "level", level.ID, "file", level.FilePath)
	return tui.Run(level.LevelData, cfg, rt, logger)
}

// playLogger returns a logger for the play session. The game owns the
// terminal, so without --log-file logs are discarded.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}
