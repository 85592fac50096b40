// Package wave simulates a damped 2D ripple field on a pair of buffers
// whose roles swap every frame.
package wave

import (
	"fmt"

	"chameleon/internal/core"
)

// Engine holds the current and previous wave generations. Border cells are
// never written by Advance, which gives the field a reflective edge.
//
// Damping factors of 1 or more make the field grow without bound; Advance
// does not guard against that.
type Engine struct {
	width, height int
	current       *core.FloatGrid
	previous      *core.FloatGrid
	swapped       bool

	sources []*Source
}

// New returns an uninitialized engine.
func New() *Engine { return &Engine{} }

// Initialize allocates both buffers filled with initial. On failure the
// previous buffers, if any, are kept.
func (e *Engine) Initialize(width, height int, initial float64) error {
	current, err := core.NewFloatGrid(width, height)
	if err != nil {
		return fmt.Errorf("wave initialize: %w", err)
	}
	previous, err := core.NewFloatGrid(width, height)
	if err != nil {
		return fmt.Errorf("wave initialize: %w", err)
	}
	if initial != 0 {
		current.Fill(initial)
		previous.Fill(initial)
	}
	e.width, e.height = width, height
	e.current, e.previous = current, previous
	e.swapped = false
	return nil
}

// Ready reports whether Initialize has succeeded.
func (e *Engine) Ready() bool { return e.current != nil }

// Size returns the buffer dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.width, H: e.height} }

// Current exposes the buffer Advance writes into next.
func (e *Engine) Current() *core.FloatGrid { return e.current }

// Previous exposes the older of the two generations.
func (e *Engine) Previous() *core.FloatGrid { return e.previous }

// Latest returns the generation produced by the most recent Advance. After
// Swap that generation lives in the previous buffer.
func (e *Engine) Latest() *core.FloatGrid {
	if e.swapped {
		return e.previous
	}
	return e.current
}

// Perturb sets a single cell of the current buffer to magnitude.
func (e *Engine) Perturb(x, y int, magnitude float64) error {
	if e.current == nil {
		return fmt.Errorf("wave perturb: %w", core.ErrNotInitialized)
	}
	if !e.current.In(x, y) {
		return fmt.Errorf("wave perturb (%d,%d) in %dx%d: %w", x, y, e.width, e.height, core.ErrOutOfBounds)
	}
	e.current.Set(x, y, magnitude)
	return nil
}

// Sample reads the current buffer at (x, y).
func (e *Engine) Sample(x, y int) (float64, error) {
	if e.current == nil {
		return 0, fmt.Errorf("wave sample: %w", core.ErrNotInitialized)
	}
	if !e.current.In(x, y) {
		return 0, fmt.Errorf("wave sample (%d,%d) in %dx%d: %w", x, y, e.width, e.height, core.ErrOutOfBounds)
	}
	return e.current.At(x, y), nil
}

// Advance computes the next generation into the current buffer:
//
//	next = (prev[y-1][x] + prev[y+1][x] + prev[y][x-1] + prev[y][x+1]) / 2 - cur[y][x]
//	cur[y][x] = next * damping
//
// for every interior cell.
func (e *Engine) Advance(damping float64) error {
	if e.current == nil {
		return fmt.Errorf("wave advance: %w", core.ErrNotInitialized)
	}
	w := e.width
	cur := e.current.Cells()
	prev := e.previous.Cells()
	for y := 1; y < e.height-1; y++ {
		row := y * w
		up := row - w
		down := row + w
		for x := 1; x < w-1; x++ {
			next := (prev[up+x]+prev[down+x]+prev[row+x-1]+prev[row+x+1])/2 - cur[row+x]
			cur[row+x] = next * damping
		}
	}
	e.swapped = false
	return nil
}

// Swap exchanges the roles of the two buffers without copying.
func (e *Engine) Swap() error {
	if e.current == nil {
		return fmt.Errorf("wave swap: %w", core.ErrNotInitialized)
	}
	e.current, e.previous = e.previous, e.current
	e.swapped = true
	return nil
}

// AddSource attaches a disturbance source updated by Frame.
func (e *Engine) AddSource(s *Source) {
	e.sources = append(e.sources, s)
}

// Sources returns the attached disturbance sources.
func (e *Engine) Sources() []*Source { return e.sources }

// Frame runs one simulated frame: sources move and perturb, the field
// advances, then the buffers swap. Every source footprint is checked
// before any is written, so a failing frame leaves sources and buffers
// untouched.
func (e *Engine) Frame(dt, damping float64) error {
	if e.current == nil {
		return fmt.Errorf("wave frame: %w", core.ErrNotInitialized)
	}
	next := make([]core.Point, len(e.sources))
	for i, s := range e.sources {
		p, err := s.step(dt, e)
		if err != nil {
			return fmt.Errorf("wave frame source %d: %w", i, err)
		}
		next[i] = p
	}
	for i, s := range e.sources {
		s.commit(next[i], e)
	}
	if err := e.Advance(damping); err != nil {
		return err
	}
	return e.Swap()
}
