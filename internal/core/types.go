package core

import (
	"image"
	"image/color"
	"sort"
)

// Size describes the dimensions of a drawing surface or grid.
type Size struct {
	W int
	H int
}

// Point is a continuous 2D coordinate in surface space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Lerp interpolates from p towards q by t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Surface is the drawing target a sketch emits its frame data to. Sketches
// never touch pixels directly; the host supplies the implementation.
type Surface interface {
	Size() Size
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeLine(a, b Point, width float64, c color.Color)
	DrawImage(img image.Image, x, y int)
}

// Sketch is the setup/loop pair every visual effect implements. The host
// calls Setup once and then Loop once per frame; Loop advances the
// simulation and draws the result before returning.
type Sketch interface {
	Name() string
	Setup(size Size, seed int64) error
	Loop(s Surface) error
}

// PointerHandler is implemented by sketches that react to pointer input.
// Coordinates are already clamped to the surface.
type PointerHandler interface {
	Pointer(x, y int) error
}

// ParameterProvider exposes the current tunables of a sketch.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Factory constructs a Sketch using an optional configuration map.
type Factory func(cfg map[string]string) Sketch

var sketches = map[string]Factory{}

// Register adds a sketch factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sketches[name] = f
}

// Sketches exposes the registry of available sketch factories.
func Sketches() map[string]Factory {
	return sketches
}

// SketchNames returns the registered names in sorted order.
func SketchNames() []string {
	names := make([]string, 0, len(sketches))
	for name := range sketches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
