package app

import (
	"flag"

	"github.com/Cuixjnoob/SanShan-Island-star/internal/config"
)

// Options represents the command-line parameters for the application.
// Zero values mean "keep the configured value".
type Options struct {
	ConfigPath   string
	SettingsPath string
	Width        int
	Height       int
	TPS          int
	Seed         int64
}

// NewOptions returns an Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{ConfigPath: "starfield.yaml", Seed: 42}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "path to the YAML config file")
	fs.StringVar(&o.SettingsPath, "settings", o.SettingsPath, "path to the settings database (overrides config)")
	fs.IntVar(&o.Width, "width", o.Width, "window width in pixels (overrides config)")
	fs.IntVar(&o.Height, "height", o.Height, "window height in pixels (overrides config)")
	fs.IntVar(&o.TPS, "tps", o.TPS, "simulation ticks per second (overrides config)")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for particle generation")
}

// Apply overlays the non-zero flag values onto cfg.
func (o *Options) Apply(cfg *config.Config) {
	if o.Width > 0 {
		cfg.Window.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Window.Height = o.Height
	}
	if o.TPS > 0 {
		cfg.Window.TPS = o.TPS
	}
	if o.SettingsPath != "" {
		cfg.Settings.Path = o.SettingsPath
	}
}
