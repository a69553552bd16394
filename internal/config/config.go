// Package config loads the board generator's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds generation settings. Command-line flags override these.
type Config struct {
	// Scenario is the board scenario tag; empty means the classic sea
	// board.
	Scenario string `yaml:"scenario"`
	// Players is the player count the layout is sized for.
	Players int `yaml:"players"`
	// Seed pins the generation seed; 0 draws a random one.
	Seed int64 `yaml:"seed"`
	// ClumpLimit is the largest allowed group of adjacent same-type
	// hexes (and run of same-type ports). 0 uses the default; a
	// negative value disables the clump check.
	ClumpLimit int `yaml:"clump_limit"`
	// Database is the SQLite path for saving boards; empty disables
	// persistence.
	Database string `yaml:"database"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Players:    4,
		ClumpLimit: 3,
	}
}

// Load reads configuration from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.Players == 0 {
		cfg.Players = 4
	}
	if cfg.ClumpLimit == 0 {
		cfg.ClumpLimit = 3
	}

	return cfg, nil
}
