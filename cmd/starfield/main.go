//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/Cuixjnoob/SanShan-Island-star/internal/app"
	"github.com/Cuixjnoob/SanShan-Island-star/internal/config"
	"github.com/Cuixjnoob/SanShan-Island-star/internal/field"
	"github.com/Cuixjnoob/SanShan-Island-star/internal/mode"
	"github.com/Cuixjnoob/SanShan-Island-star/internal/store"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// An unavailable store degrades to an unpersisted toggle, never a crash.
	var settings mode.Store
	if s, err := store.Open(cfg.Settings.Path); err != nil {
		log.Printf("settings store unavailable, red-light preference will not persist: %v", err)
	} else {
		settings = s
		defer s.Close()
	}
	modes := mode.New(settings)

	f := field.New(cfg.Field.Tuning(), cfg.Window.Width, cfg.Window.Height, opts.Seed)
	game := app.New(f, modes, opts.Seed)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
