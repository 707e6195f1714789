package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads the mappy configuration. Values missing from a file keep
// their defaults.
// Search order: customPath -> ~/.mappy/configs/mappy.yaml -> ./configs/mappy.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("mappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, ok := parse(data); ok {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "mappy.yaml")); err == nil {
		if parsed, ok := parse(data); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, ok := parse(defaultMappyYAML); ok {
		return parsed, nil
	}
	return DefaultConfig(), nil // Fallback to hardcoded if embed fails
}

// parse decodes data over the defaults. A file that does not parse is
// skipped so the next location in the search order is tried.
func parse(data []byte) (Config, bool) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	cfg.normalize()
	return cfg, true
}

// Marshal renders cfg as YAML, the format Load reads.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mappy", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
