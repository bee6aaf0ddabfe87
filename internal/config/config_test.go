package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	if *cfg != *want {
		t.Fatalf("config without file = %+v, want defaults %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestLoadYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starfield.yaml")
	data := []byte(`
window:
  width: 800
  height: 600
field:
  link_threshold: 9000
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Fatalf("window = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Field.LinkThreshold != 9000 {
		t.Fatalf("link_threshold = %g, want 9000", cfg.Field.LinkThreshold)
	}
	// Untouched keys keep their defaults.
	if cfg.Window.TPS != 60 || cfg.Field.Density != 8000 {
		t.Fatalf("defaults clobbered: tps=%d density=%g", cfg.Window.TPS, cfg.Field.Density)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starfield.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 800\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	t.Setenv("STARFIELD_WINDOW__WIDTH", "1024")
	t.Setenv("STARFIELD_FIELD__MAX_SPEED", "0.75")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Fatalf("width = %d, want env override 1024", cfg.Window.Width)
	}
	if cfg.Field.MaxSpeed != 0.75 {
		t.Fatalf("max_speed = %g, want env override 0.75", cfg.Field.MaxSpeed)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starfield.yaml")
	cfg := DefaultConfig()
	cfg.Window.Width = 640
	cfg.Field.Attraction = 0.05

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative tps", func(c *Config) { c.Window.TPS = -1 }},
		{"zero density", func(c *Config) { c.Field.Density = 0 }},
		{"negative threshold", func(c *Config) { c.Field.LinkThreshold = -1 }},
		{"attraction above one", func(c *Config) { c.Field.Attraction = 1.5 }},
		{"inverted radius range", func(c *Config) { c.Field.MinRadius = 3; c.Field.MaxRadius = 2 }},
		{"empty settings path", func(c *Config) { c.Settings.Path = "" }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: Validate accepted an invalid config", tc.name)
		}
	}
}

func TestTuningMapsAllFields(t *testing.T) {
	cfg := DefaultConfig()
	tuning := cfg.Field.Tuning()
	if tuning.Density != cfg.Field.Density ||
		tuning.LinkThreshold != cfg.Field.LinkThreshold ||
		tuning.PointerThreshold != cfg.Field.PointerThreshold ||
		tuning.Attraction != cfg.Field.Attraction ||
		tuning.MinRadius != cfg.Field.MinRadius ||
		tuning.MaxRadius != cfg.Field.MaxRadius ||
		tuning.MaxSpeed != cfg.Field.MaxSpeed {
		t.Fatalf("Tuning() dropped a field: %+v vs %+v", tuning, cfg.Field)
	}
}
