//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"chameleon/internal/app"
	"chameleon/internal/core"
	_ "chameleon/internal/sketches/carpet"
	_ "chameleon/internal/sketches/cloud"
	_ "chameleon/internal/sketches/flowfield"
	_ "chameleon/internal/sketches/isosurface"
	_ "chameleon/internal/sketches/life"
	_ "chameleon/internal/sketches/marching"
	_ "chameleon/internal/sketches/ripple"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	core.SetLogger(cfg.NewLogger(os.Stderr))
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sk, err := cfg.NewSketch()
	if err != nil {
		log.Fatal(err)
	}
	game, err := app.New(sk, cfg.Size(), cfg.Scale, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	if err := game.Reset(cfg.Seed); err != nil {
		log.Fatalf("setup %s: %v", sk.Name(), err)
	}

	ebiten.SetWindowTitle("chameleon - " + sk.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
