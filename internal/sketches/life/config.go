package life

import "chameleon/internal/core"

// Rule names accepted by Config.Rule.
const (
	RuleConway  = "conway"
	RuleBrain   = "brain"
	RuleWolfram = "wolfram"
)

// Config controls the Game of Life sketch.
type Config struct {
	// Rule picks the automaton: conway, brain or wolfram.
	Rule string
	// Code is the Wolfram code used by the wolfram rule.
	Code uint8
	// Resolution is the cell size as a fraction of the larger surface side.
	Resolution float64
	// SpawnMillis is the period of the random live-cell spawner.
	SpawnMillis int
	// Hue is the per-column hue multiplier.
	Hue float64
	// AngleStep advances the hue drift once per column per frame.
	AngleStep float64
	// Fade is the alpha of the black wash painted before each frame.
	Fade float64
	TPS  int
}

// DefaultConfig returns the canonical sketch parameters.
func DefaultConfig() Config {
	return Config{
		Rule:        RuleConway,
		Code:        90,
		Resolution:  0.01,
		SpawnMillis: 1000,
		Hue:         350,
		AngleStep:   0.05,
		Fade:        0.4,
		TPS:         60,
	}
}

// FromMap overrides defaults with values from cfg, ignoring malformed ones.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	switch v := cfg["rule"]; v {
	case RuleConway, RuleBrain, RuleWolfram:
		c.Rule = v
	}
	code := int(c.Code)
	core.ParseInt(cfg, "code", &code, func(v int) bool { return v >= 0 && v <= 255 })
	c.Code = uint8(code)
	core.ParseFloat(cfg, "resolution", &c.Resolution, func(v float64) bool { return v > 0 && v <= 1 })
	core.ParseInt(cfg, "spawn_ms", &c.SpawnMillis, core.Positive[int])
	core.ParseFloat(cfg, "hue", &c.Hue, nil)
	core.ParseFloat(cfg, "angle_step", &c.AngleStep, nil)
	core.ParseFloat(cfg, "fade", &c.Fade, func(v float64) bool { return v >= 0 && v <= 1 })
	core.ParseInt(cfg, "tps", &c.TPS, core.Positive[int])
	return c
}
