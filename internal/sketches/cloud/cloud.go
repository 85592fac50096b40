// Package cloud shades a drifting noise field from black to green over a
// steel blue backdrop.
package cloud

import (
	"fmt"
	"image"
	"image/color"

	"chameleon/internal/core"
	"chameleon/internal/gridfield"
	"chameleon/internal/noise"
	"chameleon/internal/render"
)

var (
	backdrop = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	peak     = color.RGBA{R: 5, G: 155, B: 5, A: 255}
)

// Sketch paints one shaded cell per grid point. Negative noise reads as
// black.
type Sketch struct {
	cfg     Config
	rule    *gridfield.NoiseField
	engine  *gridfield.Engine
	palette []color.RGBA
	img     *image.RGBA
}

// New returns a sketch using cfg.
func New(cfg Config) *Sketch {
	return &Sketch{cfg: cfg}
}

// Name returns the sketch identifier.
func (s *Sketch) Name() string { return "cloud" }

// Engine exposes the underlying field engine.
func (s *Sketch) Engine() *gridfield.Engine { return s.engine }

// Setup allocates one cell per Resolution pixels of surface.
func (s *Sketch) Setup(size core.Size, seed int64) error {
	res := s.cfg.Resolution
	cols := int(float64(size.W) / res)
	rows := int(float64(size.H) / res)

	palette, err := render.LinearPalette(color.Black, peak, s.cfg.Shades)
	if err != nil {
		return fmt.Errorf("cloud setup: %w", err)
	}
	src := noise.NewOctaves(noise.NewPerlin(seed), s.cfg.Octaves)
	rule := gridfield.NewNoiseField(src, s.cfg.Scale, s.cfg.TimeStep)
	rule.Drift = s.cfg.Drift
	engine := gridfield.New(rule, gridfield.WithNoise(src), gridfield.WithResolution(res))
	if err := engine.Initialize(cols, rows, gridfield.FillNoise); err != nil {
		return fmt.Errorf("cloud setup %dx%d: %w", size.W, size.H, err)
	}

	s.rule = rule
	s.engine = engine
	s.palette = palette
	s.img = nil
	core.Logger().Debug("cloud setup", "cols", cols, "rows", rows, "resolution", res)
	return nil
}

// Loop resamples the field and paints it.
func (s *Sketch) Loop(surf core.Surface) error {
	if s.engine == nil {
		return fmt.Errorf("cloud loop: %w", core.ErrNotInitialized)
	}
	if err := s.engine.Step(); err != nil {
		return err
	}

	surf.Clear(backdrop)
	size := s.engine.Size()
	cells := s.engine.Cells()
	res := s.cfg.Resolution
	if res == 1 {
		s.img = render.ScalarImage(s.img, cells, size.W, size.H, s.palette, 0, 1)
		surf.DrawImage(s.img, 0, 0)
		return nil
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			col := render.PaletteAt(s.palette, cells[y*size.W+x], 0, 1)
			surf.FillRect(float64(x)*res, float64(y)*res, res, res, col)
		}
	}
	return nil
}

// Parameters reports the current tunables.
func (s *Sketch) Parameters() core.ParameterSnapshot {
	var size core.Size
	z, shift := 0.0, 0.0
	if s.engine != nil {
		size = s.engine.Size()
		z, shift = s.rule.Z(), s.rule.Shift()
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
				core.FloatParam("z", "Z offset", z),
				core.FloatParam("shift", "X drift", shift),
			},
		},
	}}
}

func init() {
	core.Register("cloud", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}
