// Package carpet draws a Sierpinski carpet, recolouring the removed
// squares every frame.
package carpet

import (
	"fmt"
	"image/color"
	"iter"

	"chameleon/internal/core"
)

// MaxDepth bounds the recursion; depth 6 already removes 37449 squares.
const MaxDepth = 6

// Square is an axis-aligned square in surface coordinates.
type Square struct {
	X, Y, Size float64
}

// Squares yields the squares removed from the carpet occupying root, down
// to depth levels. Depth is clamped to [0, MaxDepth]. Each level removes
// the centre ninth of every square left by the previous level.
func Squares(root Square, depth int) iter.Seq[Square] {
	depth = min(max(depth, 0), MaxDepth)
	return func(yield func(Square) bool) {
		removeCentre(root, depth, yield)
	}
}

func removeCentre(sq Square, depth int, yield func(Square) bool) bool {
	if depth <= 0 {
		return true
	}
	sub := sq.Size / 3
	if !yield(Square{X: sq.X + sub, Y: sq.Y + sub, Size: sub}) {
		return false
	}
	if depth == 1 {
		return true
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == 1 && j == 1 {
				continue
			}
			child := Square{X: sq.X + float64(i)*sub, Y: sq.Y + float64(j)*sub, Size: sub}
			if !removeCentre(child, depth-1, yield) {
				return false
			}
		}
	}
	return true
}

// Count returns the number of squares Squares yields at depth.
func Count(depth int) int {
	depth = min(max(depth, 0), MaxDepth)
	n, level := 0, 1
	for i := 0; i < depth; i++ {
		n += level
		level *= 8
	}
	return n
}

// Config controls the carpet sketch.
type Config struct {
	Depth int
	// Fill is the carpet side as a fraction of the smaller surface side.
	Fill float64
}

// DefaultConfig returns the canonical sketch parameters.
func DefaultConfig() Config {
	return Config{Depth: MaxDepth, Fill: 0.8}
}

// FromMap overrides defaults with values from cfg, ignoring malformed ones.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.ParseInt(cfg, "depth", &c.Depth, core.NonNegative[int])
	core.ParseFloat(cfg, "fill", &c.Fill, func(v float64) bool { return v > 0 && v <= 1 })
	return c
}

// Sketch draws a centred carpet.
type Sketch struct {
	cfg  Config
	root Square
	rng  *core.RNG
	ok   bool
}

// New returns a sketch using cfg.
func New(cfg Config) *Sketch {
	return &Sketch{cfg: cfg}
}

// Name returns the sketch identifier.
func (s *Sketch) Name() string { return "carpet" }

// Root returns the square the carpet occupies.
func (s *Sketch) Root() Square { return s.root }

// Setup centres the carpet on the surface.
func (s *Sketch) Setup(size core.Size, seed int64) error {
	if size.W <= 0 || size.H <= 0 {
		return fmt.Errorf("carpet setup %dx%d: %w", size.W, size.H, core.ErrInvalidDimension)
	}
	side := float64(min(size.W, size.H)) * s.cfg.Fill
	s.root = Square{
		X:    float64(size.W)/2 - side/2,
		Y:    float64(size.H)/2 - side/2,
		Size: side,
	}
	s.rng = core.NewRNG(seed)
	s.ok = true
	core.Logger().Debug("carpet setup", "side", side, "depth", s.cfg.Depth)
	return nil
}

// Loop paints the white carpet and punches its holes in a fresh colour.
func (s *Sketch) Loop(surf core.Surface) error {
	if !s.ok {
		return fmt.Errorf("carpet loop: %w", core.ErrNotInitialized)
	}
	surf.Clear(color.Black)
	surf.FillRect(s.root.X, s.root.Y, s.root.Size, s.root.Size, color.White)
	hole := color.RGBA{
		R: uint8(s.rng.IntRange(0, 256)),
		G: uint8(s.rng.IntRange(0, 256)),
		B: uint8(s.rng.IntRange(0, 256)),
		A: 255,
	}
	for sq := range Squares(s.root, s.cfg.Depth) {
		surf.FillRect(sq.X, sq.Y, sq.Size, sq.Size, hole)
	}
	return nil
}

// Parameters reports the current tunables.
func (s *Sketch) Parameters() core.ParameterSnapshot {
	depth := min(max(s.cfg.Depth, 0), MaxDepth)
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Carpet",
		Params: []core.Parameter{
			core.IntParam("depth", "Depth", depth),
			core.FloatParam("fill", "Fill", s.cfg.Fill),
			core.IntParam("holes", "Holes", Count(depth)),
		},
	}}}
}

func init() {
	core.Register("carpet", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}
