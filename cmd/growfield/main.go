//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"growfield/internal/app"
	"growfield/internal/core"
	_ "growfield/internal/sims/growth"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim := factory(cfg.Set)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("growfield — " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
