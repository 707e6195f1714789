// Package config provides YAML-based configuration loading for mappy.
// Gameplay rules are fixed; only the ambient settings around the game
// (display, timing, audio, input, storage, logging and the SSH server) are
// configurable.
package config

import "time"

// Config contains all mappy configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Timing  TimingConfig  `yaml:"timing"`
	Audio   AudioConfig   `yaml:"audio"`
	Input   InputConfig   `yaml:"input"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// DisplayConfig defines the terminal view.
type DisplayConfig struct {
	Width    int  `yaml:"width"`  // Cells; 0 uses the terminal width
	Height   int  `yaml:"height"` // Cells; 0 uses the terminal height
	ShowHelp bool `yaml:"show_help"`
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"` // 0 picks a seed from the clock
}

// AudioConfig defines sound cue playback.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // Base-2 gain; 0 is unchanged, -1 is half
	SampleRate int     `yaml:"sample_rate"`
}

// InputConfig defines keyboard handling.
type InputConfig struct {
	// ReleaseTicks is how many ticks a lateral key stays held without a
	// repeat before it counts as released.
	ReleaseTicks int `yaml:"release_ticks"`
}

// StorageConfig defines where scores and saved games live.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ServerConfig defines the SSH server used by `mappy serve`.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
