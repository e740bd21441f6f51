// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// DefaultAPIBaseURL is the local development backend address.
const DefaultAPIBaseURL = "http://localhost:8000"

// Config represents the CLI configuration. Values can come from a JSON file,
// environment variables, or flags; missing values fall back to defaults.
type Config struct {
	// APIBaseURL is the TalentLoop backend address.
	APIBaseURL string `json:"api_base_url,omitempty"`
	// LinkBaseURL is the public web address used when deriving invite and
	// profile-share links. Defaults to APIBaseURL.
	LinkBaseURL string `json:"link_base_url,omitempty"`
	// CredentialsPath is where bearer tokens are stored.
	CredentialsPath string `json:"credentials_path,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`
}

// Load loads configuration from a JSON file.
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

// FromEnv builds a Config from TALENTLOOP_* environment variables. Unset
// variables leave fields empty so the result can be merged over file values.
func FromEnv() *Config {
	return &Config{
		APIBaseURL:      os.Getenv("TALENTLOOP_API_URL"),
		LinkBaseURL:     os.Getenv("TALENTLOOP_LINK_URL"),
		CredentialsPath: os.Getenv("TALENTLOOP_CREDENTIALS"),
		LogLevel:        os.Getenv("TALENTLOOP_LOG_LEVEL"),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIBaseURL != "" {
		u, err := url.Parse(c.APIBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: 'api_base_url' is not a valid URL: %s", c.APIBaseURL)
		}
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config error: unknown 'log_level': %s", c.LogLevel)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults, then from built-in fallbacks.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIBaseURL == "" {
		result.APIBaseURL = defaults.APIBaseURL
	}
	if result.LinkBaseURL == "" {
		result.LinkBaseURL = defaults.LinkBaseURL
	}
	if result.CredentialsPath == "" {
		result.CredentialsPath = defaults.CredentialsPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	if result.APIBaseURL == "" {
		result.APIBaseURL = DefaultAPIBaseURL
	}
	if result.LinkBaseURL == "" {
		result.LinkBaseURL = result.APIBaseURL
	}
	if result.CredentialsPath == "" {
		result.CredentialsPath = defaultCredentialsPath()
	}
	if result.LogLevel == "" {
		result.LogLevel = "info"
	}

	return result
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".talentloop", "credentials.json")
	}
	return filepath.Join(home, ".talentloop", "credentials.json")
}
