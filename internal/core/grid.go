package core

import "fmt"

// FloatGrid stores a 2D grid of scalar cell values in row-major order.
// Its dimensions are fixed for the lifetime of the grid.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a zeroed grid with the given dimensions.
func NewFloatGrid(w, h int) (*FloatGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", w, h, ErrInvalidDimension)
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *FloatGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// In reports whether (x, y) lies inside the grid.
func (g *FloatGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Coordinates must be in range.
func (g *FloatGrid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set writes v at (x, y). Coordinates must be in range.
func (g *FloatGrid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// Fill sets every cell to v.
func (g *FloatGrid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// CopyFrom copies src into g. Both grids must share dimensions.
func (g *FloatGrid) CopyFrom(src *FloatGrid) error {
	if src.W != g.W || src.H != g.H {
		return fmt.Errorf("copy %dx%d into %dx%d: %w", src.W, src.H, g.W, g.H, ErrInvalidDimension)
	}
	copy(g.data, src.data)
	return nil
}
