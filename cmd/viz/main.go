//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/app"
	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
	_ "github.com/Vanguardbots/synoptic-audio-visualizer/internal/sims/lifebeat"
	_ "github.com/Vanguardbots/synoptic-audio-visualizer/internal/sims/weather"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sketches()[cfg.Sketch]
	if !ok {
		log.Fatalf("unknown sketch %q", cfg.Sketch)
	}

	sketch := factory(nil)
	sketch.Reset(cfg.Seed)

	game, err := app.New(sketch, cfg)
	if err != nil {
		log.Fatalf("setup failed: %v", err)
	}
	size := sketch.Size()

	ebiten.SetWindowTitle("synoptic: " + sketch.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
