package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 10 || cfg.Height != 10 {
		t.Errorf("expected 10x10, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Interval() != 500*time.Millisecond {
		t.Errorf("expected 500ms interval, got %v", cfg.Interval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero interval", func(c *Config) { c.IntervalMs = 0 }},
		{"zero spacing", func(c *Config) { c.Layout.Spacing = 0 }},
		{"zero cell width", func(c *Config) { c.Layout.CellWidthPx = 0 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubelife.yaml")
	data := "width: 12\npattern: glider\nrotation:\n  x: 30\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Width != 12 || cfg.Height != DefaultHeight {
		t.Errorf("expected 12x%d, got %dx%d", DefaultHeight, cfg.Width, cfg.Height)
	}
	if cfg.Pattern != "glider" {
		t.Errorf("expected pattern glider, got %s", cfg.Pattern)
	}
	if cfg.Rotation.X != 30 || cfg.Rotation.Z != DefaultRotZ {
		t.Errorf("unexpected rotation %+v", cfg.Rotation)
	}
	if cfg.Layout.Spacing != DefaultSpacing {
		t.Errorf("expected default spacing, got %f", cfg.Layout.Spacing)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("width: [1, 2"), 0644)
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("width: 0\n"), 0644)
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Pattern = "toad"
	cfg.Colorize = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Pattern != "toad" || !got.Colorize {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("glider")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Pattern != "glider" {
		t.Errorf("expected pattern glider, got %s", cfg.Pattern)
	}

	cfg.Width = 99
	if Presets["glider"].Width == 99 {
		t.Error("GetPreset should return a copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
