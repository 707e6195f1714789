package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/mappy.yaml
var defaultMappyYAML []byte

// DefaultConfig returns the default mappy configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			ShowHelp: true,
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     -1,
			SampleRate: 44100,
		},
		Input: InputConfig{
			ReleaseTicks: 8,
		},
		Storage: StorageConfig{
			DBPath: "~/.mappy/mappy.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.mappy/mappy.log",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// normalize replaces out-of-range values with their defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Timing.TickRate <= 0 {
		c.Timing.TickRate = def.Timing.TickRate
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = def.Audio.SampleRate
	}
	if c.Input.ReleaseTicks <= 0 {
		c.Input.ReleaseTicks = def.Input.ReleaseTicks
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = def.Server.IdleTimeout
	}
	if c.Display.Width < 0 {
		c.Display.Width = 0
	}
	if c.Display.Height < 0 {
		c.Display.Height = 0
	}
}
