package app

import (
	"flag"
	"testing"

	"github.com/Cuixjnoob/SanShan-Island-star/internal/config"
)

func TestBindParsesAllFlags(t *testing.T) {
	opts := NewOptions()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts.Bind(fs)

	args := []string{
		"-config", "alt.yaml",
		"-settings", "alt.db",
		"-width", "640",
		"-height", "480",
		"-tps", "30",
		"-seed", "7",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.ConfigPath != "alt.yaml" || opts.SettingsPath != "alt.db" {
		t.Fatalf("paths = %q, %q", opts.ConfigPath, opts.SettingsPath)
	}
	if opts.Width != 640 || opts.Height != 480 || opts.TPS != 30 || opts.Seed != 7 {
		t.Fatalf("numeric flags = %+v", opts)
	}
}

func TestApplyOverlaysOnlySetValues(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := &Options{Width: 800, TPS: 30}
	opts.Apply(cfg)

	if cfg.Window.Width != 800 {
		t.Fatalf("width = %d, want flag override 800", cfg.Window.Width)
	}
	if cfg.Window.TPS != 30 {
		t.Fatalf("tps = %d, want flag override 30", cfg.Window.TPS)
	}
	// Unset flags leave the configured values alone.
	if cfg.Window.Height != 720 {
		t.Fatalf("height = %d, want configured 720", cfg.Window.Height)
	}
	if cfg.Settings.Path != "starfield-settings.db" {
		t.Fatalf("settings path = %q, want configured default", cfg.Settings.Path)
	}
}
