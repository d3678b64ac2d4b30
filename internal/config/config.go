package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInterval = 100 * time.Millisecond
	DefaultBounds   = 2.5
	DefaultRenderer = "window"
	DefaultTheme    = "cyberpunk"
	DefaultColumn0  = "state0"
	DefaultColumn1  = "state1"
	DefaultWidth    = 800
	DefaultHeight   = 800
	DefaultGIFScale = 4
)

const (
	RendererWindow = "window"
	RendererTUI    = "tui"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Interval time.Duration `yaml:"interval"`
	Bounds   float64       `yaml:"bounds"`
	Renderer string        `yaml:"renderer"`
	Theme    string        `yaml:"theme"`
	Trail    int           `yaml:"trail"`
	Strict   bool          `yaml:"strict"`
	Columns  ColumnsConfig `yaml:"columns"`
	Window   WindowConfig  `yaml:"window"`
	Export   ExportConfig  `yaml:"export"`
}

// ColumnsConfig names the two angle columns of the input table.
type ColumnsConfig struct {
	State0 string `yaml:"state0"`
	State1 string `yaml:"state1"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ExportConfig struct {
	// Scale is the number of GIF pixels per canvas sub-pixel.
	Scale int `yaml:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Interval: DefaultInterval,
		Bounds:   DefaultBounds,
		Renderer: DefaultRenderer,
		Theme:    DefaultTheme,
		Columns: ColumnsConfig{
			State0: DefaultColumn0,
			State1: DefaultColumn1,
		},
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Export: ExportConfig{
			Scale: DefaultGIFScale,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base, so fields the file leaves out keep
// their base values. base is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Interval <= 0:
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalidConfig, c.Interval)
	case c.Bounds <= 0:
		return fmt.Errorf("%w: bounds must be positive, got %g", ErrInvalidConfig, c.Bounds)
	case c.Renderer != RendererWindow && c.Renderer != RendererTUI:
		return fmt.Errorf("%w: renderer must be %q or %q, got %q", ErrInvalidConfig, RendererWindow, RendererTUI, c.Renderer)
	case c.Trail < 0:
		return fmt.Errorf("%w: trail must not be negative, got %d", ErrInvalidConfig, c.Trail)
	case c.Columns.State0 == "" || c.Columns.State1 == "":
		return fmt.Errorf("%w: both angle columns must be named", ErrInvalidConfig)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Export.Scale <= 0:
		return fmt.Errorf("%w: export scale must be positive, got %d", ErrInvalidConfig, c.Export.Scale)
	}
	return nil
}
