package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Interval != 100*time.Millisecond {
		t.Errorf("expected 100ms interval, got %v", cfg.Interval)
	}
	if cfg.Bounds != 2.5 {
		t.Errorf("expected bounds 2.5, got %f", cfg.Bounds)
	}
	if cfg.Columns.State0 != "state0" || cfg.Columns.State1 != "state1" {
		t.Errorf("unexpected columns: %+v", cfg.Columns)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajviz.yaml")
	data := []byte("interval: 250ms\nrenderer: tui\ntrail: 40\ncolumns:\n  state0: q0\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Interval != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.Interval)
	}
	if cfg.Renderer != RendererTUI {
		t.Errorf("expected tui renderer, got %s", cfg.Renderer)
	}
	if cfg.Columns.State0 != "q0" {
		t.Errorf("expected column q0, got %s", cfg.Columns.State0)
	}
	// untouched fields keep their defaults
	if cfg.Columns.State1 != "state1" || cfg.Bounds != 2.5 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("renderer: opengl\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadOver_KeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trail.yaml")
	if err := os.WriteFile(path, []byte("trail: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOver(path, GetPreset("slow"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Interval != 250*time.Millisecond {
		t.Errorf("expected preset interval to survive, got %v", cfg.Interval)
	}
	if cfg.Trail != 12 {
		t.Errorf("expected file trail 12, got %d", cfg.Trail)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("fast")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if back.Interval != cfg.Interval || back.Trail != cfg.Trail {
		t.Errorf("round trip mismatch: %+v vs %+v", back, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero interval", func(c *Config) { c.Interval = 0 }},
		{"negative bounds", func(c *Config) { c.Bounds = -1 }},
		{"negative trail", func(c *Config) { c.Trail = -3 }},
		{"empty column", func(c *Config) { c.Columns.State1 = "" }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"zero scale", func(c *Config) { c.Export.Scale = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("slow")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Interval != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.Interval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}
