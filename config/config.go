package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/tailored-agentic-units/actions/action"
)

// Config is the top-level configuration read by the actions CLI.
type Config struct {
	Store StoreConfig `json:"store" envPrefix:"STORE_"`

	// Delimiter separates async base types from their lifecycle phase.
	Delimiter string `json:"delimiter,omitempty" env:"DELIMITER"`
}

// DefaultConfig returns defaults for every section.
func DefaultConfig() Config {
	return Config{
		Store:     DefaultStoreConfig(),
		Delimiter: action.DefaultDelimiter,
	}
}

// Merge applies set values from source into c.
func (c *Config) Merge(source *Config) {
	c.Store.Merge(&source.Store)

	if source.Delimiter != "" {
		c.Delimiter = source.Delimiter
	}
}

// LoadConfig reads a JSON config file and merges it over the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// ParseEnv overrides cfg with ACTIONS_* environment variables. Unset
// variables leave the existing values in place.
func ParseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ACTIONS_"
