package ripple

import "chameleon/internal/core"

// Config controls the ripple sketch.
type Config struct {
	Damping float64
	// Fish is the number of wandering disturbance sources.
	Fish       int
	FishRadius int
	FishSpeed  float64
	// UseNoise picks fish targets from a noise field instead of uniformly.
	UseNoise bool
	// TickFactor shapes the per-frame time step: dt = (dt + 1) * TickFactor.
	TickFactor float64
	// IntervalMillis is the period of both the raindrop and retarget timers.
	IntervalMillis int
	// RainMargin keeps raindrops away from the borders.
	RainMargin int
	Magnitude  float64
	Palette    string
	TPS        int
}

// DefaultConfig returns the canonical sketch parameters.
func DefaultConfig() Config {
	return Config{
		Damping:        0.88,
		Fish:           1,
		FishRadius:     1,
		FishSpeed:      0.1,
		TickFactor:     0.12,
		IntervalMillis: 550,
		RainMargin:     20,
		Magnitude:      255,
		Palette:        "greys",
		TPS:            60,
	}
}

// FromMap overrides defaults with values from cfg, ignoring malformed ones.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.ParseFloat(cfg, "damping", &c.Damping, func(v float64) bool { return v > 0 && v <= 1 })
	core.ParseInt(cfg, "fish", &c.Fish, core.NonNegative[int])
	core.ParseInt(cfg, "fish_radius", &c.FishRadius, core.Positive[int])
	core.ParseFloat(cfg, "fish_speed", &c.FishSpeed, core.NonNegative[float64])
	core.ParseBool(cfg, "use_noise", &c.UseNoise)
	core.ParseFloat(cfg, "tick_factor", &c.TickFactor, func(v float64) bool { return v >= 0 && v < 1 })
	core.ParseInt(cfg, "interval_ms", &c.IntervalMillis, core.Positive[int])
	core.ParseInt(cfg, "rain_margin", &c.RainMargin, core.NonNegative[int])
	core.ParseFloat(cfg, "magnitude", &c.Magnitude, nil)
	if v, ok := cfg["palette"]; ok && v != "" {
		c.Palette = v
	}
	core.ParseInt(cfg, "tps", &c.TPS, core.Positive[int])
	return c
}
