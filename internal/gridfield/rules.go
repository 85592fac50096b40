package gridfield

import (
	"chameleon/internal/core"
	"chameleon/internal/noise"
)

// Rule computes the next generation of a field. Apply must write every cell
// of next using only cur; the engine swaps the buffers afterwards.
type Rule interface {
	Apply(cur, next *core.FloatGrid)
}

// aliveThreshold separates dead (0) and live (1) cells.
const aliveThreshold = 0.5

func alive(v float64) bool { return v > aliveThreshold }

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct{}

// Apply computes the next generation of cur into next.
func (Life) Apply(cur, next *core.FloatGrid) {
	w, h := cur.W, cur.H
	src := cur.Cells()
	dst := next.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := countNeighbors(cur, x, y)
			idx := y*w + x
			live := alive(src[idx])
			dst[idx] = 0
			if (live && (neighbors == 2 || neighbors == 3)) || (!live && neighbors == 3) {
				dst[idx] = 1
			}
		}
	}
}

func countNeighbors(g *core.FloatGrid, x, y int) int {
	w, h := g.W, g.H
	cells := g.Cells()
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			if alive(cells[ny*w+nx]) {
				neighbors++
			}
		}
	}
	return neighbors
}

// NoiseField resamples every cell from a coherent noise source. The x and
// y offsets advance by Scale per column and row; the z offset advances by
// TimeStep per application so the field evolves smoothly over time. Drift
// slides the whole x range by that much per application.
type NoiseField struct {
	Source   noise.Source
	Scale    float64
	TimeStep float64
	Drift    float64

	z     float64
	shift float64
}

// NewNoiseField returns a rule sampling src.
func NewNoiseField(src noise.Source, scale, timeStep float64) *NoiseField {
	return &NoiseField{Source: src, Scale: scale, TimeStep: timeStep}
}

// Z returns the current temporal offset.
func (n *NoiseField) Z() float64 { return n.z }

// Shift returns the accumulated x drift.
func (n *NoiseField) Shift() float64 { return n.shift }

// Apply writes a fresh noise sample into every cell of next.
func (n *NoiseField) Apply(_, next *core.FloatGrid) {
	sampleNoise(next, n.Source, n.Scale, n.shift, n.z)
	n.z += n.TimeStep
	n.shift += n.Drift
}

func sampleNoise(g *core.FloatGrid, src noise.Source, scale, shift, z float64) {
	cells := g.Cells()
	for x := 0; x < g.W; x++ {
		xoff := shift + float64(x+1)*scale
		for y := 0; y < g.H; y++ {
			yoff := float64(y) * scale
			cells[y*g.W+x] = src.Noise3D(xoff, yoff, z)
		}
	}
}

// Brian's Brain cell states.
const (
	BrainDead  = 0
	BrainOn    = 1
	BrainDying = 2
)

// BriansBrain is the three-state firing automaton: on cells start dying,
// dying cells die, and dead cells with exactly two on neighbours fire.
type BriansBrain struct{}

// Apply computes the next generation of cur into next.
func (BriansBrain) Apply(cur, next *core.FloatGrid) {
	w, h := cur.W, cur.H
	src := cur.Cells()
	dst := next.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch src[idx] {
			case BrainOn:
				dst[idx] = BrainDying
			case BrainDying:
				dst[idx] = BrainDead
			default:
				on := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx := (x + dx + w) % w
						ny := (y + dy + h) % h
						if src[ny*w+nx] == BrainOn {
							on++
						}
					}
				}
				dst[idx] = BrainDead
				if on == 2 {
					dst[idx] = BrainOn
				}
			}
		}
	}
}

// Wolfram runs a one-dimensional elementary automaton on the top row and
// scrolls earlier generations down one row per application.
type Wolfram struct {
	Code uint8
}

// Apply computes the next generation of cur into next.
func (r Wolfram) Apply(cur, next *core.FloatGrid) {
	w := cur.W
	src := cur.Cells()
	dst := next.Cells()
	copy(dst[w:], src[:len(src)-w])
	bit := func(x int) uint8 {
		if alive(src[(x+w)%w]) {
			return 1
		}
		return 0
	}
	for x := 0; x < w; x++ {
		idx := bit(x-1)<<2 | bit(x)<<1 | bit(x+1)
		dst[x] = float64((r.Code >> idx) & 1)
	}
}
