package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mappy/internal/audio"
	"github.com/vovakirdan/tui-mappy/internal/core"
	"github.com/vovakirdan/tui-mappy/internal/platform/tui"
	"github.com/vovakirdan/tui-mappy/internal/registry"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Mappy",
	Long: `Start a game of Mappy in this terminal.

Controls:
  Left/Right, A/D   - Walk, or leap off a trampoline onto a floor
  Down, S           - Drop back down a trampoline shaft
  Space/Enter       - Start, confirm initials
  Up/Down           - Change letter during name entry
  Esc/P             - Pause
  Q (paused)        - Save progress and return to the title
  L (title)         - Resume saved progress
  Ctrl+S            - Screenshot to ~/.mappy/screenshots
  Ctrl+C            - Quit

Examples:
  mappy play
  mappy play --seed 42
  mappy play --mute --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagMute {
		cfg.Audio.Enabled = false
	}

	logOut, err := openLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging disabled)\n", err)
		logOut = nopCloser{io.Discard}
	}
	defer logOut.Close()
	logger := newLogger(cfg, logOut, "mappy")

	width, height := cfg.Display.Width, cfg.Display.Height
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if width == 0 {
			width = w
		}
		if height == 0 {
			height = h
		}
	}
	if width == 0 || height == 0 {
		width, height = 80, 24
	}

	game, err := registry.Create("mappy")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg)
	defer store.Close()

	runErr := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Timing.TickRate,
			Seed:     cfg.Timing.Seed,
		},
		Store:        store,
		Audio:        audio.New(cfg.Audio, logger.WithPrefix("audio")),
		Logger:       logger,
		ReleaseTicks: cfg.Input.ReleaseTicks,
		ShowHelp:     cfg.Display.ShowHelp,
	})
	if runErr != nil {
		logger.Error("game exited with error", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
