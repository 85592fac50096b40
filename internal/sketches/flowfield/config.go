package flowfield

import "chameleon/internal/core"

// Config controls the flow field sketch.
type Config struct {
	// Resolution is the cell size in surface pixels.
	Resolution float64
	Scale      float64
	TimeStep   float64
	Octaves    int
	// Turns is how many full rotations the noise range [-1, 1] spans.
	Turns float64
	Fade  float64
}

// DefaultConfig returns the canonical sketch parameters.
func DefaultConfig() Config {
	return Config{
		Resolution: 25,
		Scale:      0.01,
		TimeStep:   0.003,
		Octaves:    8,
		Turns:      4,
		Fade:       0.5,
	}
}

// FromMap overrides defaults with values from cfg, ignoring malformed ones.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.ParseFloat(cfg, "resolution", &c.Resolution, core.Positive[float64])
	core.ParseFloat(cfg, "scale", &c.Scale, core.Positive[float64])
	core.ParseFloat(cfg, "time_step", &c.TimeStep, core.NonNegative[float64])
	core.ParseInt(cfg, "octaves", &c.Octaves, core.Positive[int])
	core.ParseFloat(cfg, "turns", &c.Turns, nil)
	core.ParseFloat(cfg, "fade", &c.Fade, func(v float64) bool { return v >= 0 && v <= 1 })
	return c
}
