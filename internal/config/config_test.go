package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Family != "triangular" {
		t.Errorf("expected family triangular, got %s", cfg.Family)
	}
	if cfg.Distance <= 0 {
		t.Error("distance should be positive")
	}
	if cfg.Columns < 1 {
		t.Error("columns should be at least 1")
	}
	if !cfg.WithOutline || !cfg.DrawGrid {
		t.Error("outline and grid should default on")
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
		{"unknown family", func(c *Config) { c.Family = "hexagonal" }},
		{"zero distance", func(c *Config) { c.Distance = 0 }},
		{"negative distance", func(c *Config) { c.Distance = -1 }},
		{"zero columns", func(c *Config) { c.Columns = 0 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figural.yaml")

	cfg := DefaultConfig()
	cfg.Family = "pentagonal"
	cfg.Distance = 1.5
	cfg.Columns = 3
	cfg.WithLabel = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: %+v != %+v", loaded, cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("family: pentagonal\ncolumns: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Family != "pentagonal" || cfg.Columns != 2 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.Distance != DefaultDistance || cfg.Marker != DefaultMarker {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("family: hexagonal\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for unknown family")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WithLabel = true
	opts := cfg.Options()

	if opts.Distance != cfg.Distance || opts.Columns != cfg.Columns {
		t.Errorf("options mismatch: %+v", opts)
	}
	if !opts.WithLabel || !opts.WithOutline || !opts.DrawGrid {
		t.Errorf("boolean options mismatch: %+v", opts)
	}
}
