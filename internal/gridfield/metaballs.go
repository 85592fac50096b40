package gridfield

import (
	"math"

	"chameleon/internal/core"
)

// DefaultStrength scales every blob's contribution to a metaball field.
const DefaultStrength = 10

// Blob is a drifting metaball that bounces off the field edges.
type Blob struct {
	Position core.Point
	Velocity core.Point
	Radius   float64
}

// Move advances the blob by its velocity and reverses the velocity along
// any axis where it left [0, w] x [0, h].
func (b *Blob) Move(w, h float64) {
	b.Position.X += b.Velocity.X
	b.Position.Y += b.Velocity.Y
	if b.Position.X > w || b.Position.X < 0 {
		b.Velocity.X = -b.Velocity.X
	}
	if b.Position.Y > h || b.Position.Y < 0 {
		b.Velocity.Y = -b.Velocity.Y
	}
}

// Metaballs writes Strength*Radius/d summed over every blob into each cell,
// d being the distance from the cell to the blob centre in cells, and then
// moves the blobs. Distances below one cell count as one so the field
// stays finite.
type Metaballs struct {
	Blobs    []*Blob
	Strength float64
}

// Apply samples the blobs into next and advances them.
func (m *Metaballs) Apply(_, next *core.FloatGrid) {
	cells := next.Cells()
	for y := 0; y < next.H; y++ {
		for x := 0; x < next.W; x++ {
			iso := 0.0
			for _, b := range m.Blobs {
				d := math.Hypot(float64(x)-b.Position.X, float64(y)-b.Position.Y)
				iso += m.Strength * b.Radius / math.Max(d, 1)
			}
			cells[y*next.W+x] = iso
		}
	}
	for _, b := range m.Blobs {
		b.Move(float64(next.W), float64(next.H))
	}
}
