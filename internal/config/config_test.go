// ABOUTME: Tests for configuration defaults, path expansion, and persistence.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scandolo/life-tracker/internal/analysis"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetUser(); got != "local" {
		t.Errorf("GetUser = %q, want local", got)
	}
	if got := cfg.GetTrendWindow(); got != analysis.DefaultWindow {
		t.Errorf("GetTrendWindow = %d, want %d", got, analysis.DefaultWindow)
	}
	if got := cfg.StrengthBands(); got != nil {
		t.Errorf("StrengthBands = %v, want nil (engine defaults)", got)
	}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir returned empty default")
	}
}

func TestOverrides(t *testing.T) {
	cfg := &Config{
		User:        "ana",
		TrendWindow: 14,
	}
	if got := cfg.GetUser(); got != "ana" {
		t.Errorf("GetUser = %q, want ana", got)
	}
	if got := cfg.GetTrendWindow(); got != 14 {
		t.Errorf("GetTrendWindow = %d, want 14", got)
	}
}

func TestStrengthBandsConversion(t *testing.T) {
	cfg := &Config{
		StrengthThresholds: []StrengthThreshold{
			{Max: 0.5, Label: "weak"},
			{Max: 0.9, Label: "strong"},
		},
	}

	bands := cfg.StrengthBands()
	if len(bands) != 2 {
		t.Fatalf("got %d bands, want 2", len(bands))
	}
	if bands[0].Max != 0.5 || bands[0].Label != analysis.Strength("weak") {
		t.Errorf("bands[0] = %+v", bands[0])
	}
	if bands[1].Max != 0.9 || bands[1].Label != analysis.Strength("strong") {
		t.Errorf("bands[1] = %+v", bands[1])
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetUser() != "local" {
		t.Errorf("GetUser = %q, want local", cfg.GetUser())
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		DataDir:       "~/tracker-data",
		User:          "ana",
		TrendWindow:   14,
		FlatTolerance: 0.25,
		StrengthThresholds: []StrengthThreshold{
			{Max: 0.5, Label: "weak"},
		},
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.User != "ana" || loaded.TrendWindow != 14 || loaded.FlatTolerance != 0.25 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	if loaded.DataDir != "~/tracker-data" {
		t.Errorf("DataDir = %q", loaded.DataDir)
	}
	if len(loaded.StrengthThresholds) != 1 || loaded.StrengthThresholds[0].Label != "weak" {
		t.Errorf("StrengthThresholds = %+v", loaded.StrengthThresholds)
	}
}

func TestGetConfigPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "lifetrack", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath = %q, want %q", got, want)
	}
}
