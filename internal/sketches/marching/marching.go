// Package marching draws the isolines of an evolving noise field using
// marching squares.
package marching

import (
	"fmt"
	"image/color"
	"math"

	"chameleon/internal/core"
	"chameleon/internal/gridfield"
	"chameleon/internal/noise"
	"chameleon/internal/render"
)

const (
	discScale  = 1.3
	angleDrift = 0.0003
)

// Sketch renders noise discs at every grid point and the threshold
// contour through them.
type Sketch struct {
	cfg    Config
	rule   *gridfield.NoiseField
	engine *gridfield.Engine

	resolution float64
	angle      float64
	segments   int
}

// New returns a sketch using cfg.
func New(cfg Config) *Sketch {
	return &Sketch{cfg: cfg}
}

// Name returns the sketch identifier.
func (s *Sketch) Name() string { return "marching" }

// Engine exposes the underlying field engine.
func (s *Sketch) Engine() *gridfield.Engine { return s.engine }

// Segments returns the number of isoline segments drawn by the last Loop.
func (s *Sketch) Segments() int { return s.segments }

// Setup sizes the grid so that it covers the surface including the far
// edges.
func (s *Sketch) Setup(size core.Size, seed int64) error {
	res := float64(max(size.W, size.H)) * s.cfg.Resolution
	if res <= 0 {
		return fmt.Errorf("marching setup %dx%d: %w", size.W, size.H, core.ErrInvalidDimension)
	}
	cols := int(float64(size.W)/res) + 1
	rows := int(float64(size.H)/res) + 1

	src := noise.NewOctaves(noise.NewPerlin(seed), s.cfg.Octaves)
	rule := gridfield.NewNoiseField(src, s.cfg.Scale, s.cfg.TimeStep)
	engine := gridfield.New(rule, gridfield.WithSeed(seed), gridfield.WithResolution(res))
	if err := engine.Initialize(cols, rows, gridfield.FillZero); err != nil {
		return fmt.Errorf("marching setup: %w", err)
	}

	s.rule = rule
	s.engine = engine
	s.resolution = res
	s.angle = 0
	core.Logger().Debug("marching setup", "cols", cols, "rows", rows, "resolution", res)
	return nil
}

// Loop resamples the field, draws the discs and then the isolines.
func (s *Sketch) Loop(surf core.Surface) error {
	if s.engine == nil {
		return fmt.Errorf("marching loop: %w", core.ErrNotInitialized)
	}
	if err := s.engine.Step(); err != nil {
		return err
	}

	surf.Clear(color.Black)
	size := s.engine.Size()
	res := s.resolution
	if s.cfg.Discs {
		cells := s.engine.Cells()
		for x := 0; x < size.W; x++ {
			s.angle += angleDrift * float64(x)
			for y := 0; y < size.H; y++ {
				v := cells[y*size.W+x]
				col := render.HSL((s.angle+float64(x))*3, 0.5, v*2)
				surf.FillCircle(float64(x)*res, float64(y)*res, math.Abs(v*res*discScale), col)
			}
		}
	}

	segs, err := s.engine.ExtractIsolines(s.cfg.Threshold)
	if err != nil {
		return err
	}
	s.segments = 0
	for seg := range segs {
		surf.StrokeLine(seg.A, seg.B, s.cfg.LineWidth, color.White)
		s.segments++
	}
	return nil
}

// Parameters reports the current tunables.
func (s *Sketch) Parameters() core.ParameterSnapshot {
	var size core.Size
	z := 0.0
	if s.engine != nil {
		size = s.engine.Size()
		z = s.rule.Z()
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
			Name: "Noise",
			Params: []core.Parameter{
				core.FloatParam("scale", "Scale", s.cfg.Scale),
				core.FloatParam("time_step", "Time step", s.cfg.TimeStep),
				core.IntParam("octaves", "Octaves", s.cfg.Octaves),
				core.FloatParam("z", "Z offset", z),
			},
		},
		{
			Name: "Contour",
			Params: []core.Parameter{
				core.FloatParam("threshold", "Threshold", s.cfg.Threshold),
				core.IntParam("segments", "Segments", s.segments),
				core.BoolParam("discs", "Discs", s.cfg.Discs),
			},
		},
	}}
}

func init() {
	core.Register("marching", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}
