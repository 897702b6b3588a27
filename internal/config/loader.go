package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no file was found.
const SourceEmbedded = "embedded"

// candidateNames are tried in each search directory, in order.
var candidateNames = []string{"pong.yaml", "pong.yml", "pong.toml"}

// Load loads the Pong configuration and reports where it came from.
// Search order: customPath -> ~/.pong/configs/pong.{yaml,toml} ->
// ./configs/pong.{yaml,toml} -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (PongConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, customPath, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".pong", "configs"))
	}
	dirs = append(dirs, "configs")

	// Broken files in the search path are skipped, not fatal
	for _, dir := range dirs {
		for _, name := range candidateNames {
			path := filepath.Join(dir, name)
			cfg, err := loadFile(path)
			if err != nil {
				continue
			}
			if cfg.Validate() != nil {
				continue
			}
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads one config file, choosing the decoder by extension.
func loadFile(path string) (PongConfig, error) {
	cfg := DefaultPongConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := Decode(path, data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode parses data into cfg. Files ending in .toml use TOML, everything
// else is treated as YAML.
func Decode(path string, data []byte, cfg *PongConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}
	return nil
}
