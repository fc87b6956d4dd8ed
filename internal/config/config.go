// ABOUTME: Life tracker configuration: data location, user id, analysis tunables.
// ABOUTME: JSON file at the XDG config path; zero values mean defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/scandolo/life-tracker/internal/analysis"
	"github.com/scandolo/life-tracker/internal/storage"
)

// Config stores life tracker configuration.
type Config struct {
	// DataDir is the root directory for the SQLite database.
	// Supports ~ expansion. Defaults to ~/.local/share/lifetrack.
	DataDir string `json:"data_dir,omitempty"`

	// User identifies whose data this installation tracks.
	// Defaults to "local"; exactly one process owns the store.
	User string `json:"user,omitempty"`

	// TrendWindow is the trailing moving-average window in days.
	TrendWindow int `json:"trend_window,omitempty"`

	// FlatTolerance is the trend comparison tolerance; differences at or
	// below it are reported as flat.
	FlatTolerance float64 `json:"flat_tolerance,omitempty"`

	// StrengthThresholds overrides the correlation strength bands.
	// Each band is an exclusive upper bound on |coefficient|.
	StrengthThresholds []StrengthThreshold `json:"strength_thresholds,omitempty"`
}

// StrengthThreshold is one configurable correlation strength band.
type StrengthThreshold struct {
	Max   float64 `json:"max"`
	Label string  `json:"label"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetUser returns the configured user id, defaulting to "local".
func (c *Config) GetUser() string {
	if c.User == "" {
		return "local"
	}
	return c.User
}

// GetTrendWindow returns the moving-average window, defaulting to 7 days.
func (c *Config) GetTrendWindow() int {
	if c.TrendWindow <= 0 {
		return analysis.DefaultWindow
	}
	return c.TrendWindow
}

// StrengthBands converts configured thresholds to engine bands,
// returning nil (engine defaults) when none are configured.
func (c *Config) StrengthBands() []analysis.StrengthBand {
	if len(c.StrengthThresholds) == 0 {
		return nil
	}
	bands := make([]analysis.StrengthBand, len(c.StrengthThresholds))
	for i, t := range c.StrengthThresholds {
		bands[i] = analysis.StrengthBand{Max: t.Max, Label: analysis.Strength(t.Label)}
	}
	return bands
}

// OpenStore opens the SQLite store under the configured data directory.
func (c *Config) OpenStore() (*storage.Store, error) {
	return storage.Open(filepath.Join(c.GetDataDir(), "lifetrack.db"))
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lifetrack", "config.json")
}

// Load reads config from disk. A missing file yields the zero config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
