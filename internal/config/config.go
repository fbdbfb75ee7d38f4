// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or are
// provided via CLI flags.
type Config struct {
	DataDir string `json:"data_dir,omitempty"` // Directory holding the persisted profile and custom graph
	Port    int    `json:"port,omitempty"`     // HTTP port for the serve command
	Verbose bool   `json:"verbose,omitempty"`  // Print detailed evaluation output
	LogJSON bool   `json:"log_json,omitempty"` // Emit JSON-formatted logs
}

// Load reads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Bool fields are not merged; CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}

// DefaultDataDir returns the per-user data directory, the backend analog
// of the browser's local storage.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skilltree"
	}
	return filepath.Join(home, ".skilltree")
}
