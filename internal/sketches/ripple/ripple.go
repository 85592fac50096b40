// Package ripple runs a damped wave field disturbed by raindrops, wandering
// fish and the pointer.
package ripple

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"chameleon/internal/core"
	"chameleon/internal/noise"
	"chameleon/internal/render"
	"chameleon/internal/wave"
)

const paletteSize = 256

// Sketch renders a wave engine one field cell per surface pixel.
type Sketch struct {
	cfg     Config
	engine  *wave.Engine
	fish    []*wave.Source
	rng     *core.RNG
	noise   noise.Source
	rain    *core.Interval
	retgt   *core.Interval
	palette []color.RGBA
	img     *image.RGBA

	size core.Size
	dt   float64
}

// New returns a sketch using cfg.
func New(cfg Config) *Sketch {
	return &Sketch{cfg: cfg}
}

// Name returns the sketch identifier.
func (s *Sketch) Name() string { return "ripple" }

// Engine exposes the underlying wave engine.
func (s *Sketch) Engine() *wave.Engine { return s.engine }

// Setup allocates a zeroed wave field matching the surface and releases
// the fish at random positions.
func (s *Sketch) Setup(size core.Size, seed int64) error {
	palette, err := render.NamedPalette(s.cfg.Palette, paletteSize)
	if err != nil {
		return fmt.Errorf("ripple setup: %w", err)
	}
	engine := wave.New()
	if err := engine.Initialize(size.W, size.H, 0); err != nil {
		return fmt.Errorf("ripple setup: %w", err)
	}

	s.engine = engine
	s.size = size
	s.dt = 0
	s.palette = palette
	s.img = nil
	s.rng = core.NewRNG(seed)
	s.noise = noise.NewPerlin(seed)
	every := core.FramesFor(time.Duration(s.cfg.IntervalMillis)*time.Millisecond, s.cfg.TPS)
	s.rain = core.NewInterval(every)
	s.retgt = core.NewInterval(every)

	s.fish = s.fish[:0]
	for i := 0; i < s.cfg.Fish; i++ {
		lo, hiX, hiY := s.fishBounds()
		pos := core.Pt(float64(s.rng.IntRange(lo, hiX)), float64(s.rng.IntRange(lo, hiY)))
		f := wave.NewSource(pos, s.cfg.FishRadius, s.cfg.FishSpeed)
		f.Magnitude = s.cfg.Magnitude
		s.fish = append(s.fish, f)
		engine.AddSource(f)
	}
	core.Logger().Debug("ripple setup", "width", size.W, "height", size.H, "fish", len(s.fish))
	return nil
}

// Loop fires the timers, advances the field one frame and paints it.
func (s *Sketch) Loop(surf core.Surface) error {
	if s.engine == nil {
		return fmt.Errorf("ripple loop: %w", core.ErrNotInitialized)
	}
	if s.retgt.Tick() {
		s.retarget()
	}
	if s.rain.Tick() {
		if err := s.raindrop(); err != nil {
			return err
		}
	}

	s.dt = (s.dt + 1) * s.cfg.TickFactor
	if err := s.engine.Frame(s.dt, s.cfg.Damping); err != nil {
		return err
	}

	field := s.engine.Latest()
	s.img = render.ScalarImage(s.img, field.Cells(), field.W, field.H, s.palette, 0, 1)
	surf.DrawImage(s.img, 0, 0)
	return nil
}

// Pointer disturbs the field under the pointer.
func (s *Sketch) Pointer(x, y int) error {
	if s.engine == nil {
		return fmt.Errorf("ripple pointer: %w", core.ErrNotInitialized)
	}
	return s.engine.Perturb(x, y, s.cfg.Magnitude)
}

// raindrop perturbs one random cell inside the rain margin.
func (s *Sketch) raindrop() error {
	mx := min(s.cfg.RainMargin, s.size.W/4)
	my := min(s.cfg.RainMargin, s.size.H/4)
	x := s.rng.IntRange(mx, s.size.W-mx)
	y := s.rng.IntRange(my, s.size.H-my)
	return s.engine.Perturb(x, y, s.cfg.Magnitude)
}

// retarget gives every fish a new destination whose whole footprint stays
// inside the field.
func (s *Sketch) retarget() {
	lo, hiX, hiY := s.fishBounds()
	for _, f := range s.fish {
		var x, y float64
		if s.cfg.UseNoise {
			n := s.noise.Noise3D(f.Position.X, f.Target.Y, 0)
			n2 := s.noise.Noise3D(f.Position.Y, f.Target.X, 0)
			x = math.Floor(noise.Map(n, -1, 1, float64(lo), float64(hiX-1)))
			y = math.Floor(noise.Map(n2, -1, 1, float64(lo), float64(hiY-1)))
		} else {
			x = float64(s.rng.IntRange(lo, hiX))
			y = float64(s.rng.IntRange(lo, hiY))
		}
		f.MoveTo(core.Pt(x, y))
	}
}

// fishBounds returns the half-open range of valid fish anchor cells. The
// anchor plus the diagonal footprint must stay in the field.
func (s *Sketch) fishBounds() (lo, hiX, hiY int) {
	r := s.cfg.FishRadius
	lo = min(r+1, max(0, s.size.W-r), max(0, s.size.H-r))
	hiX = max(lo+1, s.size.W-r-1)
	hiY = max(lo+1, s.size.H-r-1)
	return lo, hiX, hiY
}

// Parameters reports the current tunables.
func (s *Sketch) Parameters() core.ParameterSnapshot {
	energy := 0.0
	if s.engine != nil {
		energy = render.Energy(s.engine.Latest().Cells())
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Wave",
			Params: []core.Parameter{
				core.FloatParam("damping", "Damping", s.cfg.Damping),
				core.FloatParam("energy", "Energy", energy),
				core.StringParam("palette", "Palette", s.cfg.Palette),
			},
		},
		{
			Name: "Disturbances",
			Params: []core.Parameter{
				core.IntParam("fish", "Fish", len(s.fish)),
				core.FloatParam("fish_speed", "Fish speed", s.cfg.FishSpeed),
				core.BoolParam("use_noise", "Noise targets", s.cfg.UseNoise),
				core.IntParam("interval_ms", "Interval (ms)", s.cfg.IntervalMillis),
				core.FloatParam("magnitude", "Magnitude", s.cfg.Magnitude),
			},
		},
	}}
}

func init() {
	core.Register("ripple", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}
