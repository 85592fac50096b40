package cloud

import "chameleon/internal/core"

// Config controls the cloud sketch.
type Config struct {
	// Resolution is the cell size in surface pixels.
	Resolution float64
	Scale      float64
	TimeStep   float64
	// Drift slides the sampled window along x every frame.
	Drift   float64
	Octaves int
	Shades  int
}

// DefaultConfig returns the canonical sketch parameters.
func DefaultConfig() Config {
	return Config{
		Resolution: 1,
		Scale:      0.015,
		TimeStep:   0.003,
		Drift:      0.0001,
		Octaves:    8,
		Shades:     256,
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
	core.ParseFloat(cfg, "drift", &c.Drift, nil)
	core.ParseInt(cfg, "octaves", &c.Octaves, core.Positive[int])
	core.ParseInt(cfg, "shades", &c.Shades, func(v int) bool { return v >= 2 })
	return c
}
