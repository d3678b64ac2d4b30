package config

import (
	"sort"
	"time"
)

// Presets are named playback profiles. Each is applied on top of
// DefaultConfig, so only the fields that differ are set.
var Presets = map[string]func(*Config){
	"realtime": func(c *Config) {
		c.Interval = DefaultInterval
	},
	"slow": func(c *Config) {
		c.Interval = 250 * time.Millisecond
	},
	"fast": func(c *Config) {
		c.Interval = 33 * time.Millisecond
		c.Trail = 30
	},
	"inspect": func(c *Config) {
		c.Interval = 500 * time.Millisecond
		c.Trail = 200
		c.Strict = true
	},
	"terminal": func(c *Config) {
		c.Renderer = RendererTUI
		c.Trail = 60
	},
}

// GetPreset returns a fresh config with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
