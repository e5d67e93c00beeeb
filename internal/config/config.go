package config

import (
	"fmt"
	"os"

	"github.com/san-kum/figural/internal/figural"
	"github.com/san-kum/figural/internal/plot"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFamily     = "triangular"
	DefaultDistance   = 0.5
	DefaultMarker     = "o"
	DefaultMarkerSize = 10.0
	DefaultColor      = "black"
	DefaultColumns    = 4
)

// Config is the yaml drawing configuration. CLI flags override any
// value loaded from a file.
type Config struct {
	Family      string  `yaml:"family"`
	Distance    float64 `yaml:"distance"`
	Marker      string  `yaml:"marker"`
	MarkerSize  float64 `yaml:"marker_size"`
	Color       string  `yaml:"color"`
	Columns     int     `yaml:"columns"`
	WithLabel   bool    `yaml:"with_label"`
	WithOutline bool    `yaml:"with_outline"`
	DrawGrid    bool    `yaml:"draw_grid"`
}

func DefaultConfig() *Config {
	return &Config{
		Family:      DefaultFamily,
		Distance:    DefaultDistance,
		Marker:      DefaultMarker,
		MarkerSize:  DefaultMarkerSize,
		Color:       DefaultColor,
		Columns:     DefaultColumns,
		WithOutline: true,
		DrawGrid:    true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

// Validate checks the fields that cannot be repaired by defaulting.
func (c *Config) Validate() error {
	if figural.ByName(c.Family) == nil {
		return fmt.Errorf("config: unknown family %q", c.Family)
	}
	if c.Distance <= 0 {
		return fmt.Errorf("config: distance must be positive, got %g", c.Distance)
	}
	if c.Columns < 1 {
		return fmt.Errorf("config: columns must be >= 1, got %d", c.Columns)
	}
	return nil
}

// Options converts the configuration into drawing options.
func (c *Config) Options() plot.Options {
	return plot.Options{
		Distance:    c.Distance,
		MarkerStyle: c.Marker,
		MarkerSize:  c.MarkerSize,
		Color:       c.Color,
		WithLabel:   c.WithLabel,
		WithOutline: c.WithOutline,
		Columns:     c.Columns,
		DrawGrid:    c.DrawGrid,
	}
}
