package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// defaultMaxDegree bounds the degree accepted from the command line;
// p(30) = 5604 gives a table of about 31M entries.
const defaultMaxDegree = 30

// Config holds chartable settings loaded from YAML.
type Config struct {
	// MaxDegree is the largest n accepted by table and partitions.
	MaxDegree int `yaml:"max_degree"`

	// Format is one of text, yaml, json.
	Format string `yaml:"format"`

	// Verify runs the orthogonality check after building a table.
	Verify bool `yaml:"verify"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		MaxDegree: defaultMaxDegree,
		Format:    formatText,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path or a
// missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.MaxDegree < 0 {
		return nil, fmt.Errorf("max_degree %d: %w", cfg.MaxDegree, ErrNegativeDegree)
	}

	return cfg, nil
}
