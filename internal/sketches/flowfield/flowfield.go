// Package flowfield draws a grid of short strokes whose headings follow an
// evolving noise field.
package flowfield

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
	strokeLength = 1.2
	strokeWidth  = 0.1
	angleDrift   = 0.003
)

// Sketch renders one stroke per grid cell.
type Sketch struct {
	cfg    Config
	rule   *gridfield.NoiseField
	engine *gridfield.Engine
	angle  float64
}

// New returns a sketch using cfg.
func New(cfg Config) *Sketch {
	return &Sketch{cfg: cfg}
}

// Name returns the sketch identifier.
func (s *Sketch) Name() string { return "flowfield" }

// Engine exposes the underlying field engine.
func (s *Sketch) Engine() *gridfield.Engine { return s.engine }

// Setup allocates one cell per Resolution pixels of surface.
func (s *Sketch) Setup(size core.Size, seed int64) error {
	res := s.cfg.Resolution
	cols := int(float64(size.W) / res)
	rows := int(float64(size.H) / res)

	src := noise.NewOctaves(noise.NewPerlin(seed), s.cfg.Octaves)
	rule := gridfield.NewNoiseField(src, s.cfg.Scale, s.cfg.TimeStep)
	engine := gridfield.New(rule, gridfield.WithResolution(res))
	if err := engine.Initialize(cols, rows, gridfield.FillZero); err != nil {
		return fmt.Errorf("flowfield setup %dx%d: %w", size.W, size.H, err)
	}
	s.rule = rule
	s.engine = engine
	s.angle = 0
	core.Logger().Debug("flowfield setup", "cols", cols, "rows", rows, "resolution", res)
	return nil
}

// Heading returns the stroke direction in radians for noise value n.
func (s *Sketch) Heading(n float64) float64 {
	return n * 2 * math.Pi * s.cfg.Turns
}

// Loop resamples the field and draws the strokes over a translucent wash.
func (s *Sketch) Loop(surf core.Surface) error {
	if s.engine == nil {
		return fmt.Errorf("flowfield loop: %w", core.ErrNotInitialized)
	}
	if err := s.engine.Step(); err != nil {
		return err
	}

	surf.Clear(render.WithAlpha(color.RGBA{A: 255}, s.cfg.Fade))
	size := s.engine.Size()
	cells := s.engine.Cells()
	res := s.cfg.Resolution
	l := res * strokeLength
	for x := 0; x < size.W; x++ {
		s.angle += angleDrift * float64(x)
		for y := 0; y < size.H; y++ {
			n := cells[y*size.W+x]
			sin, cos := math.Sincos(s.Heading(n))
			origin := core.Pt(float64(x)*res, float64(y)*res)
			// The unrotated stroke runs along the (1, 1) diagonal.
			tip := core.Pt(origin.X+l*(cos-sin), origin.Y+l*(sin+cos))
			col := render.HSL((s.angle+float64(x))*3, 0.5, 0.5+math.Abs(n)*0.5)
			surf.StrokeLine(origin, tip, res*strokeWidth, col)
		}
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
				core.FloatParam("turns", "Turns", s.cfg.Turns),
				core.FloatParam("z", "Z offset", z),
			},
		},
	}}
}

func init() {
	core.Register("flowfield", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}
