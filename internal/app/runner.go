package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"chameleon/internal/core"
	"chameleon/internal/render"
)

// RunFrames calls Loop n times, stopping early when ctx is done. It returns
// the number of completed frames.
func RunFrames(ctx context.Context, sk core.Sketch, surf core.Surface, n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := sk.Loop(surf); err != nil {
			return i, fmt.Errorf("%s frame %d: %w", sk.Name(), i, err)
		}
	}
	return n, nil
}

// RenderSeed sets up a fresh sketch with seed, runs the configured number
// of frames on a canvas and writes the PNG.
func RenderSeed(ctx context.Context, cfg *Config, seed int64) (string, error) {
	sk, err := cfg.NewSketch()
	if err != nil {
		return "", err
	}
	canvas, err := render.NewCanvas(cfg.Width, cfg.Height)
	if err != nil {
		return "", err
	}
	if err := sk.Setup(cfg.Size(), seed); err != nil {
		return "", fmt.Errorf("%s setup: %w", sk.Name(), err)
	}
	log := core.Logger().With("sketch", sk.Name(), "seed", seed)
	if p, ok := sk.(core.ParameterProvider); ok {
		for _, param := range p.Parameters().Flatten() {
			log.Debug("parameter", "key", param.Key, "value", param.Value)
		}
	}

	frames, err := RunFrames(ctx, sk, canvas, cfg.Frames)
	if err != nil {
		return "", err
	}
	path := cfg.OutputPath(seed)
	if err := canvas.SavePNG(path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	log.Info("rendered", "frames", frames, "out", path)
	return path, nil
}

// Render renders cfg.Seeds consecutive seeds starting at cfg.Seed, at most
// cfg.Workers at a time. It returns the written paths in seed order.
func Render(ctx context.Context, cfg *Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	paths := make([]string, cfg.Seeds)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.Workers))
	for i := 0; i < cfg.Seeds; i++ {
		seed := cfg.Seed + int64(i)
		g.Go(func() error {
			path, err := RenderSeed(ctx, cfg, seed)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// ClampPointer clamps a pointer position to the surface.
func ClampPointer(x, y int, size core.Size) (int, int) {
	x = min(max(x, 0), size.W-1)
	y = min(max(y, 0), size.H-1)
	return x, y
}
