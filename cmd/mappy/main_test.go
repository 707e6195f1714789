package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mappy/internal/config"
)

func TestApplyFlags(t *testing.T) {
	defer func() { flagFPS, flagSeed, flagDBPath, flagLogLevel = 0, 0, "", "" }()

	cfg := applyFlags(config.DefaultConfig())
	if cfg.Timing.TickRate != 60 || cfg.Storage.DBPath != "~/.mappy/mappy.db" {
		t.Errorf("applyFlags() without flags changed the config: %+v", cfg)
	}

	flagFPS, flagSeed, flagDBPath, flagLogLevel = 30, 7, "/tmp/m.db", "debug"
	cfg = applyFlags(config.DefaultConfig())
	if cfg.Timing.TickRate != 30 || cfg.Timing.Seed != 7 {
		t.Errorf("Timing = %+v, expected 30 fps and seed 7", cfg.Timing)
	}
	if cfg.Storage.DBPath != "/tmp/m.db" || cfg.Log.Level != "debug" {
		t.Errorf("flags not applied: db %q, level %q", cfg.Storage.DBPath, cfg.Log.Level)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()

	cfg.Log.Level = "warn"
	if l := newLogger(cfg, &buf, "test"); l.GetLevel() != log.WarnLevel {
		t.Errorf("GetLevel() = %v, expected warn", l.GetLevel())
	}

	buf.Reset()
	cfg.Log.Level = "loud"
	l := newLogger(cfg, &buf, "test")
	if l.GetLevel() != log.InfoLevel {
		t.Errorf("GetLevel() = %v for an unknown level, expected info", l.GetLevel())
	}
	if !strings.Contains(buf.String(), "unknown log level") {
		t.Errorf("expected a warning about the level, got %q", buf.String())
	}
}

func TestEveryCommandRegistered(t *testing.T) {
	for _, name := range []string{"play", "serve", "scores", "progress", "config", "list"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}
