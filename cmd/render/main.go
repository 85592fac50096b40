package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"chameleon/internal/app"
	"chameleon/internal/core"
	_ "chameleon/internal/sketches/carpet"
	_ "chameleon/internal/sketches/cloud"
	_ "chameleon/internal/sketches/flowfield"
	_ "chameleon/internal/sketches/isosurface"
	_ "chameleon/internal/sketches/life"
	_ "chameleon/internal/sketches/marching"
	_ "chameleon/internal/sketches/ripple"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := cfg.NewLogger(os.Stderr)
	core.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("rendering", "sketch", cfg.Sketch, "size", cfg.Size(), "frames", cfg.Frames, "seeds", cfg.Seeds)
	paths, err := app.Render(ctx, cfg)
	if errors.Is(err, context.Canceled) {
		logger.Warn("interrupted")
		os.Exit(130)
	}
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("done", "files", len(paths))
}
