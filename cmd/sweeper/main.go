// sweeper is a minesweeper with power-ups for the terminal.
//
// Usage:
//
//	sweeper play             - Play a game
//	sweeper menu             - Pick a difficulty interactively
//	sweeper serve            - Start SSH server for remote play
//	sweeper scores [key]     - Show best times and win rates
//	sweeper difficulties     - List available difficulties
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default: ~/.sweeper/results.db)
//	--config <path>    - Use a custom sweeper.yaml
//	--log-file <path>  - Write logs to a file
//	--debug            - Debug logging (to ~/.sweeper/debug.log unless --log-file)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Sweeper - minesweeper with power-ups in your terminal",
	Long: `Sweeper is a terminal minesweeper with a safe first click,
chording and four power-ups: x-ray, safe click, auto flag and time freeze.

Available commands:
  play          - Play a game directly
  menu          - Interactive difficulty picker
  serve         - Start SSH server for remote play
  scores        - View best times and win rates
  difficulties  - List configured difficulties

Examples:
  sweeper play
  sweeper play --difficulty hard
  sweeper menu
  sweeper serve --ssh :2222
  sweeper scores medium`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sweeper/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom sweeper.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
}

// settings is the resolved game configuration shared by all commands.
type settings struct {
	config     config.Config
	source     config.Source
	catalog    sweeper.Catalog
	rules      sweeper.Rules
	difficulty string
}

// loadSettings loads the config file and exits on error.
func loadSettings() settings {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return settings{
		config:     cfg,
		source:     source,
		catalog:    catalog,
		rules:      cfg.Rules(),
		difficulty: cfg.DefaultKey(),
	}
}

// newFileLogger returns a logger for interactive commands. The TUI owns the
// terminal, so logs go to --log-file, or ~/.sweeper/debug.log with --debug,
// and are discarded otherwise. The returned func closes the file.
func newFileLogger() (*log.Logger, func()) {
	path := flagLogFile
	if path == "" && flagDebug {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".sweeper", "debug.log")
		}
	}
	if path == "" {
		return log.New(io.Discard), func() {}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //#nosec G304 -- user-provided log path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "sweeper",
		Level:           logLevel(),
	})
	return logger, func() { f.Close() }
}

func logLevel() log.Level {
	if flagDebug {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig(difficulty string) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.Difficulty = difficulty
	if user := os.Getenv("USER"); user != "" {
		cfg.Player = user
	}
	return cfg
}
