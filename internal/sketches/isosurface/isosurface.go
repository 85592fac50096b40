// Package isosurface renders drifting metaballs with banded green and blue
// channels.
package isosurface

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"chameleon/internal/core"
	"chameleon/internal/gridfield"
	"chameleon/internal/render"
)

const (
	baseLevel = 125

	firstTargetLo, firstTargetHi = 100, 255
	nextTargetLo, nextTargetHi   = 10, 20
)

// tint tracks the moduli of the green and blue bands.
type tint struct {
	t             float64
	green, blue   float64
	greenT, blueT float64
}

func (c *tint) advance(step float64, rng *core.RNG) {
	c.t += step
	if c.t > 1 {
		c.t = 0
	}
	c.green = c.greenT * c.t
	c.blue = c.blueT * c.t
	if c.green >= c.greenT {
		c.greenT = rng.Range(nextTargetLo, nextTargetHi)
	}
	if c.blue >= c.blueT {
		c.blueT = rng.Range(nextTargetLo, nextTargetHi)
	}
}

// Sketch samples the metaball field once per cell every frame.
type Sketch struct {
	cfg    Config
	rule   *gridfield.Metaballs
	engine *gridfield.Engine
	rng    *core.RNG
	tint   tint
	img    *image.RGBA
}

// New returns a sketch using cfg.
func New(cfg Config) *Sketch {
	return &Sketch{cfg: cfg}
}

// Name returns the sketch identifier.
func (s *Sketch) Name() string { return "isosurface" }

// Engine exposes the underlying field engine.
func (s *Sketch) Engine() *gridfield.Engine { return s.engine }

// Blobs returns the live metaballs.
func (s *Sketch) Blobs() []*gridfield.Blob {
	if s.rule == nil {
		return nil
	}
	return s.rule.Blobs
}

// Setup scatters the blobs over the grid. Radii fall between 1.5 and 2
// times the shorter grid side.
func (s *Sketch) Setup(size core.Size, seed int64) error {
	res := s.cfg.Resolution
	cols := int(float64(size.W) / res)
	rows := int(float64(size.H) / res)

	rng := core.NewRNG(seed)
	short := float64(min(cols, rows))
	blobs := make([]*gridfield.Blob, s.cfg.Blobs)
	for i := range blobs {
		blobs[i] = &gridfield.Blob{
			Position: core.Pt(rng.Range(0, float64(cols)), rng.Range(0, float64(rows))),
			Velocity: core.Pt(rng.Range(s.cfg.MinSpeed, s.cfg.MaxSpeed), rng.Range(s.cfg.MinSpeed, s.cfg.MaxSpeed)),
			Radius:   rng.Range(short*1.5, short*2),
		}
	}
	rule := &gridfield.Metaballs{Blobs: blobs, Strength: s.cfg.Strength}
	engine := gridfield.New(rule, gridfield.WithSeed(seed), gridfield.WithResolution(res))
	if err := engine.Initialize(cols, rows, gridfield.FillZero); err != nil {
		return fmt.Errorf("isosurface setup %dx%d: %w", size.W, size.H, err)
	}

	s.rule = rule
	s.engine = engine
	s.rng = rng
	s.tint = tint{
		greenT: rng.Range(firstTargetLo, firstTargetHi),
		blueT:  rng.Range(firstTargetLo, firstTargetHi),
	}
	s.img = image.NewRGBA(image.Rect(0, 0, cols, rows))
	core.Logger().Debug("isosurface setup", "cols", cols, "rows", rows, "blobs", len(blobs))
	return nil
}

// Shade maps a field value to a pixel under the current bands.
func (s *Sketch) Shade(iso float64) color.RGBA {
	return color.RGBA{
		R: channel(iso),
		G: channel(baseLevel - math.Mod(iso, s.tint.green)),
		B: channel(baseLevel - math.Mod(iso, s.tint.blue)),
		A: 255,
	}
}

// channel clamps v into a byte; NaN from a zero modulus reads as 0.
func channel(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}

// Loop samples the field, moves the blobs and paints the result.
func (s *Sketch) Loop(surf core.Surface) error {
	if s.engine == nil {
		return fmt.Errorf("isosurface loop: %w", core.ErrNotInitialized)
	}
	s.tint.advance(s.cfg.TintStep, s.rng)
	if err := s.engine.Step(); err != nil {
		return err
	}

	surf.Clear(color.Black)
	size := s.engine.Size()
	cells := s.engine.Cells()
	res := s.cfg.Resolution
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			col := s.Shade(cells[y*size.W+x])
			if res == 1 {
				s.img.SetRGBA(x, y, col)
				continue
			}
			surf.FillRect(float64(x)*res, float64(y)*res, res, res, col)
		}
	}
	if res == 1 {
		surf.DrawImage(s.img, 0, 0)
	}
	return nil
}

// Parameters reports the current tunables.
func (s *Sketch) Parameters() core.ParameterSnapshot {
	var size core.Size
	var lo, hi float64
	if s.engine != nil {
		size = s.engine.Size()
		lo, hi = render.Extent(s.engine.Cells())
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("cols", "Columns", size.W),
				core.IntParam("rows", "Rows", size.H),
				core.FloatParam("resolution", "Resolution", s.cfg.Resolution),
			},
		},
		{
			Name: "Field",
			Params: []core.Parameter{
				core.IntParam("blobs", "Blobs", len(s.Blobs())),
				core.FloatParam("strength", "Strength", s.cfg.Strength),
				core.FloatParam("iso_min", "Min", lo),
				core.FloatParam("iso_max", "Max", hi),
			},
		},
		{
			Name: "Bands",
			Params: []core.Parameter{
				core.FloatParam("green", "Green modulus", s.tint.green),
				core.FloatParam("blue", "Blue modulus", s.tint.blue),
			},
		},
	}}
}

func init() {
	core.Register("isosurface", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}
