package config

import "github.com/Cuixjnoob/SanShan-Island-star/internal/field"

// Config is the full application configuration.
type Config struct {
	Window   WindowConfig   `koanf:"window" yaml:"window"`
	Field    FieldConfig    `koanf:"field" yaml:"field"`
	Settings SettingsConfig `koanf:"settings" yaml:"settings"`
}

// WindowConfig controls the application window and frame pacing.
type WindowConfig struct {
	Width  int    `koanf:"width" yaml:"width"`
	Height int    `koanf:"height" yaml:"height"`
	Title  string `koanf:"title" yaml:"title"`
	TPS    int    `koanf:"tps" yaml:"tps"`
}

// FieldConfig carries the starfield tuning. Thresholds are squared
// distances, matching how the field compares them.
type FieldConfig struct {
	Density          float64 `koanf:"density" yaml:"density"`
	LinkThreshold    float64 `koanf:"link_threshold" yaml:"link_threshold"`
	PointerThreshold float64 `koanf:"pointer_threshold" yaml:"pointer_threshold"`
	Attraction       float64 `koanf:"attraction" yaml:"attraction"`
	MinRadius        float64 `koanf:"min_radius" yaml:"min_radius"`
	MaxRadius        float64 `koanf:"max_radius" yaml:"max_radius"`
	MaxSpeed         float64 `koanf:"max_speed" yaml:"max_speed"`
}

// Tuning converts the section into the simulation's own config type.
func (c FieldConfig) Tuning() field.Config {
	return field.Config{
		Density:          c.Density,
		LinkThreshold:    c.LinkThreshold,
		PointerThreshold: c.PointerThreshold,
		Attraction:       c.Attraction,
		MinRadius:        c.MinRadius,
		MaxRadius:        c.MaxRadius,
		MaxSpeed:         c.MaxSpeed,
	}
}

// SettingsConfig locates the persisted UI settings.
type SettingsConfig struct {
	Path string `koanf:"path" yaml:"path"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "SanShan Island Night Sky",
			TPS:    60,
		},
		Field: FieldConfig{
			Density:          8000,
			LinkThreshold:    6000,
			PointerThreshold: 20000,
			Attraction:       0.03,
			MinRadius:        0.5,
			MaxRadius:        2.0,
			MaxSpeed:         0.5,
		},
		Settings: SettingsConfig{
			Path: "starfield-settings.db",
		},
	}
}
