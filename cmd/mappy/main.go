// mappy is a terminal remake of the Mappy platform-maze arcade game.
//
// Usage:
//
//	mappy play              - Play in this terminal
//	mappy serve             - Start SSH server for remote play
//	mappy scores            - Show the high score table
//	mappy progress          - Show or clear the saved game
//	mappy config            - Print the effective configuration
//	mappy list              - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default from config: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.mappy/mappy.db)
//	--config <path>       - Use a specific config file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mappy/internal/config"
	"github.com/vovakirdan/tui-mappy/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tui-mappy/internal/games/mappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mappy",
	Short: "Mappy - a platform-maze arcade game in your terminal",
	Long: `Mappy puts you in charge of a police mouse recovering stolen goods
from a mansion full of cats. Bounce up the trampoline shafts, collect the
loot in matching pairs and slam doors on your pursuers.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - View the high score table
  progress  - Show or clear the saved game
  config    - Print the effective configuration
  list      - List registered games

Examples:
  mappy play
  mappy play --seed 42 --mute
  mappy serve --ssh :2222
  mappy scores --plain`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (empty = from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// loadConfig reads the config file and applies the global flags on top.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	return applyFlags(cfg)
}

// applyFlags overrides cfg with every global flag that was set.
func applyFlags(cfg config.Config) config.Config {
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Timing.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// newLogger builds the application logger writing to w.
func newLogger(cfg config.Config, w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens the configured log file for appending. The terminal
// belongs to the game while it runs, so logs must not reach stdout.
func openLogFile(cfg config.Config) (io.WriteCloser, error) {
	path := config.ExpandHome(cfg.Log.File)
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openStore opens the database named by cfg, exiting on failure.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(config.ExpandHome(cfg.Storage.DBPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}
