package config

import "sort"

var Presets = map[string]*Config{
	"blinker": withPattern("blinker", 10, 10),
	"toad":    withPattern("toad", 10, 10),
	"beacon":  withPattern("beacon", 10, 10),
	"glider":  withPattern("glider", 10, 10),
	"lwss":    withPattern("lwss", 16, 10),
	"soup": {
		Width: 10, Height: 10, IntervalMs: 500, Pattern: "random", Colorize: true,
		Theme: DefaultTheme, Layout: DefaultConfig().Layout, Rotation: DefaultConfig().Rotation,
	},
	"terrain": {
		Width: 16, Height: 16, IntervalMs: 300, Pattern: "noise", Seed: 7, NoiseScale: 0.3,
		Theme: "ocean", Layout: DefaultConfig().Layout, Rotation: RotationConfig{X: 50, Z: 30},
	},
}

func withPattern(pattern string, w, h int) *Config {
	cfg := DefaultConfig()
	cfg.Pattern = pattern
	cfg.Width, cfg.Height = w, h
	return cfg
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
