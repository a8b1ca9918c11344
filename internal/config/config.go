package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth        = 10
	DefaultHeight       = 10
	DefaultIntervalMs   = 500
	DefaultSpacing      = 50.0
	DefaultTopOffset    = -500.0
	DefaultThreshold    = 500.0
	DefaultCellWidthPx  = 8.0
	DefaultCellHeightPx = 16.0
	DefaultRotX         = 60.0
	DefaultRotZ         = 45.0
	DefaultTheme        = "cyberpunk"
)

type Config struct {
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	IntervalMs int            `yaml:"interval_ms"`
	Pattern    string         `yaml:"pattern"`
	Seed       int64          `yaml:"seed"`
	NoiseScale float64        `yaml:"noise_scale"`
	Colorize   bool           `yaml:"colorize"`
	Theme      string         `yaml:"theme"`
	Layout     LayoutConfig   `yaml:"layout"`
	Rotation   RotationConfig `yaml:"rotation"`
}

type LayoutConfig struct {
	Spacing         float64 `yaml:"spacing"`
	TopOffset       float64 `yaml:"top_offset"`
	MobileThreshold float64 `yaml:"mobile_threshold"`
	CellWidthPx     float64 `yaml:"cell_width_px"`
	CellHeightPx    float64 `yaml:"cell_height_px"`
}

type RotationConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		IntervalMs: DefaultIntervalMs,
		Theme:      DefaultTheme,
		Layout: LayoutConfig{
			Spacing:         DefaultSpacing,
			TopOffset:       DefaultTopOffset,
			MobileThreshold: DefaultThreshold,
			CellWidthPx:     DefaultCellWidthPx,
			CellHeightPx:    DefaultCellHeightPx,
		},
		Rotation: RotationConfig{X: DefaultRotX, Z: DefaultRotZ},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to read config: %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to parse config: %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "[Load] invalid config: %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "[Save] failed to encode config")
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the simulator cannot start with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.IntervalMs <= 0 {
		return fmt.Errorf("interval_ms must be positive, got %d", c.IntervalMs)
	}
	if c.Layout.Spacing <= 0 {
		return fmt.Errorf("layout.spacing must be positive, got %g", c.Layout.Spacing)
	}
	if c.Layout.CellWidthPx <= 0 || c.Layout.CellHeightPx <= 0 {
		return fmt.Errorf("cell pixel size must be positive, got %gx%g", c.Layout.CellWidthPx, c.Layout.CellHeightPx)
	}
	return nil
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}
