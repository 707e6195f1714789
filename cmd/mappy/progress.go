package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mappy/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the saved game",
	Long: `Show the game saved with Q from the pause screen. Press L on the
title screen to resume it.

Examples:
  mappy progress
  mappy progress clear`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

var progressClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the saved game",
	Args:  cobra.NoArgs,
	Run:   runProgressClear,
}

func init() {
	progressCmd.AddCommand(progressClearCmd)
}

func runProgress(_ *cobra.Command, _ []string) {
	store := openStore(loadConfig())
	defer store.Close()

	p, err := store.Progress()
	if errors.Is(err, storage.ErrNoProgress) {
		fmt.Println("No saved game.")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading progress: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Saved game")
	fmt.Println()
	fmt.Printf("  Round: %d\n", p.Level)
	fmt.Printf("  Score: %d\n", p.Score)
	fmt.Printf("  Lives: %d\n", p.Lives)
}

func runProgressClear(_ *cobra.Command, _ []string) {
	store := openStore(loadConfig())
	defer store.Close()

	if err := store.ClearProgress(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing progress: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Saved game cleared.")
}
