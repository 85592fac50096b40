// Package life renders Conway's Game of Life over a gridfield engine,
// seeding a random live cell at a fixed period.
package life

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"chameleon/internal/core"
	"chameleon/internal/gridfield"
	"chameleon/internal/render"
)

// Sketch draws a coloured Game of Life board.
type Sketch struct {
	cfg    Config
	engine *gridfield.Engine
	rng    *core.RNG
	spawn  *core.Interval

	size       core.Size
	resolution float64
	angle      float64
}

// New returns a sketch using cfg.
func New(cfg Config) *Sketch {
	return &Sketch{cfg: cfg}
}

// Name returns the sketch identifier.
func (s *Sketch) Name() string { return "life" }

// Engine exposes the underlying field engine.
func (s *Sketch) Engine() *gridfield.Engine { return s.engine }

// Setup sizes the board from the surface and fills it with random 0/1 cells.
func (s *Sketch) Setup(size core.Size, seed int64) error {
	res := float64(max(size.W, size.H)) * s.cfg.Resolution
	if res <= 0 {
		return fmt.Errorf("life setup %dx%d: %w", size.W, size.H, core.ErrInvalidDimension)
	}
	cols := max(1, int(math.Round(float64(size.W)/res)))
	rows := max(1, int(math.Round(float64(size.H)/res)))

	rule, fill := s.rule()
	engine := gridfield.New(rule, gridfield.WithSeed(seed), gridfield.WithResolution(res))
	if err := engine.Initialize(cols, rows, fill); err != nil {
		return fmt.Errorf("life setup: %w", err)
	}
	if s.cfg.Rule == RuleWolfram {
		if err := engine.Set(cols/2, 0, 1); err != nil {
			return fmt.Errorf("life setup: %w", err)
		}
	}

	s.engine = engine
	s.size = size
	s.resolution = res
	s.angle = 0
	s.rng = core.NewRNG(seed + 1)
	s.spawn = core.NewInterval(core.FramesFor(time.Duration(s.cfg.SpawnMillis)*time.Millisecond, s.cfg.TPS))
	core.Logger().Debug("life setup", "rule", s.cfg.Rule, "cols", cols, "rows", rows, "resolution", res)
	return nil
}

// Loop spawns a cell when the timer fires, steps the board and draws it.
func (s *Sketch) Loop(surf core.Surface) error {
	if s.engine == nil {
		return fmt.Errorf("life loop: %w", core.ErrNotInitialized)
	}
	if s.spawn.Tick() {
		if err := s.spawnCell(); err != nil {
			return err
		}
	}
	if err := s.engine.Step(); err != nil {
		return err
	}

	surf.Clear(render.WithAlpha(color.RGBA{A: 255}, s.cfg.Fade))
	size := s.engine.Size()
	cells := s.engine.Cells()
	res := s.resolution
	for x := 0; x < size.W; x++ {
		s.angle += s.cfg.AngleStep
		for y := 0; y < size.H; y++ {
			light := 0.5
			switch cells[y*size.W+x] {
			case 1:
			case gridfield.BrainDying:
				light = 0.2
			default:
				continue
			}
			col := render.HSL(math.Mod(s.cfg.Hue*float64(x)+s.angle, 360), 0.5, light)
			surf.FillRect(float64(x)*res-0.5, float64(y)*res-0.5, res-0.5, res-0.5, col)
		}
	}
	return nil
}

func (s *Sketch) rule() (gridfield.Rule, gridfield.FillPolicy) {
	switch s.cfg.Rule {
	case RuleBrain:
		return gridfield.BriansBrain{}, gridfield.FillBinary
	case RuleWolfram:
		return gridfield.Wolfram{Code: s.cfg.Code}, gridfield.FillZero
	default:
		return gridfield.Life{}, gridfield.FillBinary
	}
}

// Pointer brings the cell under surface point (x, y) to life.
func (s *Sketch) Pointer(x, y int) error {
	if s.engine == nil {
		return fmt.Errorf("life pointer: %w", core.ErrNotInitialized)
	}
	size := s.engine.Size()
	cx := min(size.W-1, max(0, int(float64(x)/s.resolution)))
	cy := min(size.H-1, max(0, int(float64(y)/s.resolution)))
	return s.engine.Set(cx, cy, 1)
}

// spawnCell revives a random cell away from the left and top edges.
func (s *Sketch) spawnCell() error {
	size := s.engine.Size()
	x := s.rng.IntRange(1, size.W-1)
	y := s.rng.IntRange(1, size.H-1)
	if x >= size.W {
		x = 0
	}
	if y >= size.H {
		y = 0
	}
	return s.engine.Set(x, y, 1)
}

// Parameters reports the current tunables.
func (s *Sketch) Parameters() core.ParameterSnapshot {
	var size core.Size
	if s.engine != nil {
		size = s.engine.Size()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", s.cfg.Rule),
				core.IntParam("cols", "Columns", size.W),
				core.IntParam("rows", "Rows", size.H),
				core.FloatParam("resolution", "Resolution", s.cfg.Resolution),
			},
		},
		{
			Name: "Animation",
			Params: []core.Parameter{
				core.IntParam("spawn_ms", "Spawn period (ms)", s.cfg.SpawnMillis),
				core.FloatParam("hue", "Hue step", s.cfg.Hue),
				core.FloatParam("fade", "Fade", s.cfg.Fade),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}
