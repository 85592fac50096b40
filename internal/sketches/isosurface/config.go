package isosurface

import "chameleon/internal/core"

// Config controls the metaball sketch.
type Config struct {
	// Resolution is the cell size in surface pixels.
	Resolution float64
	Blobs      int
	Strength   float64
	// MinSpeed and MaxSpeed bound each velocity component in cells per frame.
	MinSpeed float64
	MaxSpeed float64
	// TintStep is how far the colour bands advance per frame.
	TintStep float64
}

// DefaultConfig returns the canonical sketch parameters.
func DefaultConfig() Config {
	return Config{
		Resolution: 4,
		Blobs:      10,
		Strength:   10,
		MinSpeed:   0.1,
		MaxSpeed:   0.5,
		TintStep:   0.01,
	}
}

// FromMap overrides defaults with values from cfg, ignoring malformed ones.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.ParseFloat(cfg, "resolution", &c.Resolution, core.Positive[float64])
	core.ParseInt(cfg, "blobs", &c.Blobs, core.Positive[int])
	core.ParseFloat(cfg, "strength", &c.Strength, core.Positive[float64])
	core.ParseFloat(cfg, "min_speed", &c.MinSpeed, core.NonNegative[float64])
	core.ParseFloat(cfg, "max_speed", &c.MaxSpeed, core.NonNegative[float64])
	core.ParseFloat(cfg, "tint_step", &c.TintStep, func(v float64) bool { return v > 0 && v <= 1 })
	return c
}
