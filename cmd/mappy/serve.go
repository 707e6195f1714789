package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mappy/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Mappy SSH server",
	Long: `Start an SSH server that lets users connect and play Mappy.

Each SSH connection gets its own game. All players share the server's
score table, and a saved game is shared as well.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mappy/host_key

Examples:
  mappy serve                           # Listen on the configured address
  mappy serve --ssh :2222               # Listen on port 2222
  mappy serve --host-key ./my_host_key  # Use specific host key
  mappy serve --db ./mappy.db           # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (empty = from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (0 = from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}

	logger := newLogger(cfg, os.Stderr, "mappy-ssh")

	store := openStore(cfg)
	defer store.Close()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:      cfg.Server.Address,
		HostKeyPath:  cfg.Server.HostKeyPath,
		IdleTimeout:  cfg.Server.IdleTimeout,
		GameID:       "mappy",
		TickRate:     cfg.Timing.TickRate,
		ReleaseTicks: cfg.Input.ReleaseTicks,
		ShowHelp:     cfg.Display.ShowHelp,
	}, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Mappy SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
