// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the service configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// environment variables or CLI flags.
type Config struct {
	// Server
	Port string `json:"port,omitempty"` // HTTP listen port

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Generation
	APIKey string `json:"api_key,omitempty"` // Gemini API key

	// Export
	ChromePath           string `json:"chrome_path,omitempty"`            // Chrome/Chromium binary for PDF capture
	ExportTimeoutSeconds int    `json:"export_timeout_seconds,omitempty"` // Per-export capture deadline

	// Persistence
	SaveQuietMS int `json:"save_quiet_ms,omitempty"` // Debounce window before a save is written

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Environment variable names read by FromEnv.
const (
	envPort        = "PORT"
	envDatabaseURL = "DATABASE_URL"
	envAPIKey      = "GEMINI_API_KEY"
	envChromePath  = "CHROME_PATH"
)

// DefaultConfig returns the built-in defaults applied last in the merge chain.
func DefaultConfig() Config {
	return Config{
		Port:                 "8080",
		ExportTimeoutSeconds: 60,
		SaveQuietMS:          1000,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// FromEnv returns a Config populated from environment variables. Values that
// are unset stay empty and fall through to file or default values in the merge.
func FromEnv() Config {
	return Config{
		Port:        os.Getenv(envPort),
		DatabaseURL: os.Getenv(envDatabaseURL),
		APIKey:      os.Getenv(envAPIKey),
		ChromePath:  os.Getenv(envChromePath),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.ExportTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'export_timeout_seconds' must be non-negative")
	}
	if c.SaveQuietMS < 0 {
		return fmt.Errorf("config error: 'save_quiet_ms' must be non-negative")
	}
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer environment values over a config file over built-ins.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Port == "" {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	// Int fields: use default if zero
	if result.ExportTimeoutSeconds == 0 {
		result.ExportTimeoutSeconds = defaults.ExportTimeoutSeconds
	}
	if result.SaveQuietMS == 0 {
		result.SaveQuietMS = defaults.SaveQuietMS
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
