package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game at the given difficulty.

The first reveal is always safe: mines are placed after it, away from
the clicked cell and its neighbors.

Controls:
  Arrows/hjkl   - Move cursor
  Space/Enter   - Reveal (left click)
  F             - Flag (right click)
  C             - Chord: reveal neighbors of a satisfied number (middle click)
  1 2 3 4       - X-ray, Safe click, Auto flag, Time freeze
  R             - Restart
  D             - Next difficulty
  Ctrl+S        - Screenshot
  ?             - Help
  Q/Ctrl+C      - Quit

Examples:
  sweeper play
  sweeper play --difficulty hard
  sweeper play --seed 42
  sweeper play --config ./my-sweeper.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty key (see 'sweeper difficulties')")
}

func runPlay(_ *cobra.Command, _ []string) {
	s := loadSettings()

	difficulty := s.difficulty
	if flagDifficulty != "" {
		difficulty = flagDifficulty
	}
	if _, err := s.catalog.Lookup(difficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sweeper difficulties' to see available difficulties.")
		os.Exit(1)
	}

	logger, closeLog := newFileLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results database unavailable", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Debug("config loaded", "source", s.source, "difficulty", difficulty)

	err = tui.Run(tui.GameOptions{
		Catalog: s.catalog,
		Rules:   s.rules,
		Store:   store,
		Logger:  logger,
		Config:  runtimeConfig(difficulty),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
