// ABOUTME: Configuration for endpoints, cache, and output locations.
// ABOUTME: JSON config file under XDG paths; defaults when no file exists.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Config holds licdb settings. Every field has a working default, so a
// missing config file is not an error.
type Config struct {
	// LicensesURL is the master SPDX licence list.
	LicensesURL string `json:"licenses_url,omitempty"`

	// LicenseDetailBase prefixes per-licence detail fetches ({id}.json).
	LicenseDetailBase string `json:"license_detail_base,omitempty"`

	// ExceptionsURL is the master SPDX exception list.
	ExceptionsURL string `json:"exceptions_url,omitempty"`

	// ExceptionDetailBase prefixes per-exception detail fetches.
	ExceptionDetailBase string `json:"exception_detail_base,omitempty"`

	// FSFAPIBase prefixes FSF metadata lookups ({id}.json).
	FSFAPIBase string `json:"fsf_api_base,omitempty"`

	// CacheTTLHours controls response cache expiry (default: 24h).
	CacheTTLHours int `json:"cache_ttl_hours"`

	// OutputDir is where datasets are written (default: "dataset").
	OutputDir string `json:"output_dir,omitempty"`
}

// DefaultConfig returns a Config pointing at the public endpoints.
func DefaultConfig() *Config {
	return &Config{
		LicensesURL:         "https://raw.githubusercontent.com/spdx/license-list-data/main/json/licenses.json",
		LicenseDetailBase:   "https://raw.githubusercontent.com/spdx/license-list-data/main/json/details/",
		ExceptionsURL:       "https://raw.githubusercontent.com/spdx/license-list-data/main/json/exceptions.json",
		ExceptionDetailBase: "https://raw.githubusercontent.com/spdx/license-list-data/main/json/exceptions/",
		FSFAPIBase:          "https://spdx.github.io/fsf-api/spdx/",
		CacheTTLHours:       24,
		OutputDir:           "dataset",
	}
}

// CacheTTL returns the configured TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "licdb")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// CacheDir returns the default response cache directory.
func CacheDir() string {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, _ := os.UserHomeDir()
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, "licdb")
}

// Load reads configuration from disk, returning defaults if not found.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to disk.
func Save(cfg *Config) error {
	if err := os.MkdirAll(ConfigDir(), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(), data, 0600)
}
