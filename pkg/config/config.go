// Package config provides configuration handling for flowgraph.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/tcmartin/flowgraph/pkg/logging"
)

// Config represents the application configuration
type Config struct {
	// Compiler configuration
	Compiler CompilerConfig `json:"compiler"`

	// Logging configuration
	Logging logging.Config `json:"logging"`
}

// CompilerConfig contains graph compilation settings
type CompilerConfig struct {
	// CacheEnabled turns on memoized compilation keyed by the structural
	// snapshot hash
	CacheEnabled bool `json:"cache_enabled"`

	// MaxDepth caps container nesting during validation; 0 means unlimited
	MaxDepth int `json:"max_depth"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Compiler: CompilerConfig{
			CacheEnabled: true,
			MaxDepth:     0,
		},
		Logging: logging.Config{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// LoadConfig loads the configuration from a JSON file, then applies
// environment overrides. A missing file is not an error: defaults are used.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	config.applyEnvOverrides()
	return config, nil
}

// applyEnvOverrides applies FLOWGRAPH_* environment variables on top of the
// loaded configuration.
func (c *Config) applyEnvOverrides() {
	if value := os.Getenv("FLOWGRAPH_LOG_LEVEL"); value != "" {
		c.Logging.Level = value
	}
	if value := os.Getenv("FLOWGRAPH_LOG_FORMAT"); value != "" {
		c.Logging.Format = value
	}
	if value := os.Getenv("FLOWGRAPH_CACHE_ENABLED"); value != "" {
		if enabled, err := strconv.ParseBool(value); err == nil {
			c.Compiler.CacheEnabled = enabled
		}
	}
	if value := os.Getenv("FLOWGRAPH_MAX_DEPTH"); value != "" {
		if depth, err := strconv.Atoi(value); err == nil {
			c.Compiler.MaxDepth = depth
		}
	}
}
