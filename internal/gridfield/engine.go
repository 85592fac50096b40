// Package gridfield advances a discrete scalar field with a pluggable update
// rule and extracts marching-squares isolines from it.
package gridfield

import (
	"fmt"
	"iter"
	"math"

	"chameleon/internal/core"
	"chameleon/internal/noise"
)

// FillPolicy selects how a freshly initialized field is populated.
type FillPolicy int

const (
	// FillZero leaves every cell at 0.
	FillZero FillPolicy = iota
	// FillRandom draws every cell uniformly from [0, 1).
	FillRandom
	// FillNoise samples the engine's noise source at z = 0.
	FillNoise
	// FillBinary draws every cell from {0, 1}.
	FillBinary
)

func (p FillPolicy) String() string {
	switch p {
	case FillZero:
		return "zero"
	case FillRandom:
		return "random"
	case FillNoise:
		return "noise"
	case FillBinary:
		return "binary"
	default:
		return fmt.Sprintf("FillPolicy(%d)", int(p))
	}
}

// Option customises an Engine.
type Option func(*Engine)

// WithSeed seeds the random fill policies.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = core.NewRNG(seed) }
}

// WithNoise sets the noise source used by FillNoise.
func WithNoise(src noise.Source) Option {
	return func(e *Engine) { e.noise = src }
}

// WithResolution sets the grid-to-world scale used for isoline endpoints.
func WithResolution(r float64) Option {
	return func(e *Engine) {
		if r > 0 {
			e.resolution = r
		}
	}
}

// Engine owns a scalar field and advances it with a Rule. The zero value
// is not usable; construct with New. Until Initialize succeeds the engine
// rejects every field operation with core.ErrNotInitialized.
type Engine struct {
	rule Rule

	field *core.FloatGrid
	next  *core.FloatGrid

	rng        *core.RNG
	noise      noise.Source
	resolution float64

	// gen counts committed generations; isoline sequences stop once stale.
	gen uint64
}

// defaultNoiseScale is the FillNoise sampling step for rules that do not
// carry their own scale.
const defaultNoiseScale = 0.1

// New returns an uninitialized engine advanced by rule.
func New(rule Rule, opts ...Option) *Engine {
	e := &Engine{rule: rule, resolution: 1}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = core.NewRNG(1)
	}
	return e
}

// Initialize allocates a cols x rows field filled according to fill. On
// failure the previous field, if any, is left untouched.
func (e *Engine) Initialize(cols, rows int, fill FillPolicy) error {
	field, err := core.NewFloatGrid(cols, rows)
	if err != nil {
		return fmt.Errorf("gridfield initialize: %w", err)
	}
	next, err := core.NewFloatGrid(cols, rows)
	if err != nil {
		return fmt.Errorf("gridfield initialize: %w", err)
	}

	switch fill {
	case FillZero:
	case FillRandom:
		core.FillUniform(e.rng.Source(), field.Cells())
	case FillBinary:
		core.FillBinary(e.rng.Source(), field.Cells())
	case FillNoise:
		if e.noise == nil {
			return fmt.Errorf("gridfield initialize: fill %s requires a noise source", fill)
		}
		scale, shift, z := defaultNoiseScale, 0.0, 0.0
		if nf, ok := e.rule.(*NoiseField); ok {
			scale, shift, z = nf.Scale, nf.shift, nf.z
		}
		sampleNoise(field, e.noise, scale, shift, z)
	default:
		return fmt.Errorf("gridfield initialize: unknown %s", fill)
	}

	e.field, e.next = field, next
	e.gen++
	return nil
}

// Ready reports whether Initialize has succeeded.
func (e *Engine) Ready() bool { return e.field != nil }

// Size returns the field dimensions, or the zero Size before Initialize.
func (e *Engine) Size() core.Size {
	if e.field == nil {
		return core.Size{}
	}
	return core.Size{W: e.field.W, H: e.field.H}
}

// Resolution returns the grid-to-world scale.
func (e *Engine) Resolution() float64 { return e.resolution }

// Cells exposes the current field values in row-major order.
func (e *Engine) Cells() []float64 {
	if e.field == nil {
		return nil
	}
	return e.field.Cells()
}

// At returns the value of cell (x, y).
func (e *Engine) At(x, y int) (float64, error) {
	if err := e.checkCell(x, y); err != nil {
		return 0, err
	}
	return e.field.At(x, y), nil
}

// Set writes v into cell (x, y).
func (e *Engine) Set(x, y int, v float64) error {
	if err := e.checkCell(x, y); err != nil {
		return err
	}
	e.field.Set(x, y, v)
	return nil
}

// Step advances the field by one application of the rule. The rule writes
// the whole next generation before the buffers swap.
func (e *Engine) Step() error {
	if e.field == nil {
		return fmt.Errorf("gridfield step: %w", core.ErrNotInitialized)
	}
	e.rule.Apply(e.field, e.next)
	e.field, e.next = e.next, e.field
	e.gen++
	return nil
}

// CountNeighbors returns the number of live cells among the eight wrapped
// neighbours of (x, y).
func (e *Engine) CountNeighbors(x, y int) (int, error) {
	if err := e.checkCell(x, y); err != nil {
		return 0, err
	}
	return countNeighbors(e.field, x, y), nil
}

// ClassifyNeighborhood packs the 2x2 block whose top-left corner is (x, y)
// into a CellState. A corner counts as set when its value exceeds threshold.
// The threshold must be finite.
func (e *Engine) ClassifyNeighborhood(x, y int, threshold float64) (CellState, error) {
	if e.field == nil {
		return 0, fmt.Errorf("gridfield classify: %w", core.ErrNotInitialized)
	}
	if err := checkThreshold(threshold); err != nil {
		return 0, fmt.Errorf("gridfield classify: %w", err)
	}
	if x < 0 || y < 0 || x+1 >= e.field.W || y+1 >= e.field.H {
		return 0, fmt.Errorf("gridfield classify (%d,%d) in %dx%d: %w", x, y, e.field.W, e.field.H, core.ErrOutOfBounds)
	}
	return classify(e.field, x, y, threshold), nil
}

// ExtractIsolines returns the marching-squares segments of every interior
// 2x2 block. The sequence walks the field lazily each time it is ranged
// over and never mutates it. It describes the generation current when it
// was created: after the next Step or Initialize it yields nothing.
func (e *Engine) ExtractIsolines(threshold float64) (iter.Seq[Segment], error) {
	if e.field == nil {
		return nil, fmt.Errorf("gridfield isolines: %w", core.ErrNotInitialized)
	}
	if err := checkThreshold(threshold); err != nil {
		return nil, fmt.Errorf("gridfield isolines: %w", err)
	}
	field := e.field
	res := e.resolution
	gen := e.gen
	return func(yield func(Segment) bool) {
		for y := 0; y < field.H-1; y++ {
			if e.gen != gen {
				return
			}
			for x := 0; x < field.W-1; x++ {
				state := classify(field, x, y, threshold)
				for _, pair := range segmentTable[state] {
					if !yield(segmentFor(state, pair, x, y, res)) {
						return
					}
				}
			}
		}
	}, nil
}

// Generation returns the number of generations committed by Initialize
// and Step.
func (e *Engine) Generation() uint64 { return e.gen }

func checkThreshold(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("%v: %w", t, core.ErrInvalidThreshold)
	}
	return nil
}

func (e *Engine) checkCell(x, y int) error {
	if e.field == nil {
		return core.ErrNotInitialized
	}
	if !e.field.In(x, y) {
		return fmt.Errorf("cell (%d,%d) in %dx%d: %w", x, y, e.field.W, e.field.H, core.ErrOutOfBounds)
	}
	return nil
}

func classify(g *core.FloatGrid, x, y int, threshold float64) CellState {
	bit := func(v float64) CellState {
		if v > threshold {
			return 1
		}
		return 0
	}
	a := bit(g.At(x, y))
	b := bit(g.At(x+1, y))
	c := bit(g.At(x+1, y+1))
	d := bit(g.At(x, y+1))
	return a*8 + b*4 + c*2 + d
}
