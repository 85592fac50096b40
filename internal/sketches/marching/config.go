package marching

import "chameleon/internal/core"

// Config controls the marching-squares sketch.
type Config struct {
	// Resolution is the cell size as a fraction of the larger surface side.
	Resolution float64
	Scale      float64
	TimeStep   float64
	Octaves    int
	// Threshold separates set and unset corners.
	Threshold float64
	// Discs toggles the per-cell noise discs under the isolines.
	Discs     bool
	LineWidth float64
}

// DefaultConfig returns the canonical sketch parameters.
func DefaultConfig() Config {
	return Config{
		Resolution: 0.02,
		Scale:      0.1,
		TimeStep:   0.03,
		Octaves:    8,
		Threshold:  0,
		Discs:      true,
		LineWidth:  1,
	}
}

// FromMap overrides defaults with values from cfg, ignoring malformed ones.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.ParseFloat(cfg, "resolution", &c.Resolution, func(v float64) bool { return v > 0 && v <= 1 })
	core.ParseFloat(cfg, "scale", &c.Scale, core.Positive[float64])
	core.ParseFloat(cfg, "time_step", &c.TimeStep, core.NonNegative[float64])
	core.ParseInt(cfg, "octaves", &c.Octaves, core.Positive[int])
	core.ParseFloat(cfg, "threshold", &c.Threshold, func(v float64) bool { return v >= -1 && v <= 1 })
	core.ParseBool(cfg, "discs", &c.Discs)
	core.ParseFloat(cfg, "line_width", &c.LineWidth, core.Positive[float64])
	return c
}
