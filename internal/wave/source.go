package wave

import (
	"fmt"
	"math"

	"chameleon/internal/core"
)

// DefaultMagnitude is the value a source writes into the field.
const DefaultMagnitude = 255

// Source is a moving point that injects a fixed value into the current
// buffer every tick while gliding towards its target.
type Source struct {
	Position  core.Point
	Target    core.Point
	Radius    int
	Speed     float64
	Magnitude float64
}

// NewSource returns a source resting at pos.
func NewSource(pos core.Point, radius int, speed float64) *Source {
	if radius < 1 {
		radius = 1
	}
	return &Source{
		Position:  pos,
		Target:    pos,
		Radius:    radius,
		Speed:     speed,
		Magnitude: DefaultMagnitude,
	}
}

// MoveTo sets a new target position.
func (s *Source) MoveTo(p core.Point) { s.Target = p }

// Update moves the source towards its target by dt*Speed of the remaining
// distance and perturbs the diagonal run of Radius cells starting at the
// rounded position. When the new footprint does not fit the field the
// source keeps its position and nothing is written.
func (s *Source) Update(dt float64, e *Engine) error {
	next, err := s.step(dt, e)
	if err != nil {
		return err
	}
	s.commit(next, e)
	return nil
}

// step returns the position Update would move to after checking that its
// footprint lies inside e.
func (s *Source) step(dt float64, e *Engine) (core.Point, error) {
	if e.current == nil {
		return s.Position, fmt.Errorf("source update: %w", core.ErrNotInitialized)
	}
	t := dt * s.Speed
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	next := s.Position.Lerp(s.Target, t)

	x, y := anchor(next)
	last := s.Radius - 1
	if !e.current.In(x, y) || !e.current.In(x+last, y+last) {
		return s.Position, fmt.Errorf("source footprint (%d,%d)+%d: %w", x, y, s.Radius, core.ErrOutOfBounds)
	}
	return next, nil
}

// commit moves the source to a position already checked by step and
// writes its footprint.
func (s *Source) commit(next core.Point, e *Engine) {
	s.Position = next
	x, y := anchor(next)
	for i := 0; i < s.Radius; i++ {
		e.current.Set(x+i, y+i, s.Magnitude)
	}
}

func anchor(p core.Point) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}
