package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/colorgrad"
	"gonum.org/v1/gonum/floats"
)

// HSL returns an opaque colour from hue in degrees (any range), saturation
// and lightness in [0, 1]. Out-of-range lightness is clamped.
func HSL(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsl(h, clamp01(s), clamp01(l)).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its alpha replaced by a in [0, 1], premultiplied.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R)*a + 0.5),
		G: uint8(float64(c.G)*a + 0.5),
		B: uint8(float64(c.B)*a + 0.5),
		A: uint8(255*a + 0.5),
	}
}

// GradientPalette samples grad into n opaque colours.
func GradientPalette(grad colorgrad.Gradient, n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	cols := grad.Colors(uint(n))
	palette := make([]color.RGBA, len(cols))
	for i, c := range cols {
		palette[i] = color.RGBAModel.Convert(c).(color.RGBA)
		palette[i].A = 255
	}
	return palette
}

// GreyPalette returns a black to white ramp of n colours.
func GreyPalette(n int) []color.RGBA {
	return reversed(GradientPalette(colorgrad.Greys(), n))
}

// NamedPalette returns n colours of a preset gradient ordered dark to light.
// Known names are greys, blues, viridis, inferno and turbo.
func NamedPalette(name string, n int) ([]color.RGBA, error) {
	switch name {
	case "", "greys":
		return GreyPalette(n), nil
	case "blues":
		// Sequential schemes run light to dark.
		return reversed(GradientPalette(colorgrad.Blues(), n)), nil
	case "viridis":
		return GradientPalette(colorgrad.Viridis(), n), nil
	case "inferno":
		return GradientPalette(colorgrad.Inferno(), n), nil
	case "turbo":
		return GradientPalette(colorgrad.Turbo(), n), nil
	default:
		return nil, fmt.Errorf("unknown palette %q", name)
	}
}

func reversed(p []color.RGBA) []color.RGBA {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Extent returns the minimum and maximum of values. Empty input yields 0, 0.
func Extent(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return floats.Min(values), floats.Max(values)
}

// Energy returns the sum of squared values, a cheap summary of field activity.
func Energy(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Dot(values, values)
}

// fillScalarRGBA converts scalar values into RGBA pixels using a palette.
// Values are clamped to [lo, hi] and spread over the palette. When the
// palette is empty the buffer is cleared to transparent black.
func fillScalarRGBA(buf []byte, values []float64, palette []color.RGBA, lo, hi float64) {
	if len(palette) == 0 {
		for i := range values {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	for i, v := range values {
		base := i * 4
		col := PaletteAt(palette, v, lo, hi)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// PaletteAt returns the palette entry for v clamped to [lo, hi]. The
// palette must not be empty.
func PaletteAt(palette []color.RGBA, v, lo, hi float64) color.RGBA {
	idx := 0
	if span := hi - lo; span > 0 {
		idx = int(clamp01((v-lo)/span)*float64(len(palette)-1) + 0.5)
	}
	return palette[idx]
}

// LinearPalette blends n colours from one colour to another.
func LinearPalette(from, to color.Color, n int) ([]color.RGBA, error) {
	grad, err := colorgrad.NewGradient().Colors(from, to).Build()
	if err != nil {
		return nil, fmt.Errorf("linear palette: %w", err)
	}
	return GradientPalette(grad, n), nil
}

// ScalarImage renders a w x h row-major field through palette into img,
// allocating a new image when img is nil or the wrong size.
func ScalarImage(img *image.RGBA, values []float64, w, h int, palette []color.RGBA, lo, hi float64) *image.RGBA {
	if img == nil || img.Rect.Dx() != w || img.Rect.Dy() != h {
		img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	if len(values) != w*h {
		return img
	}
	fillScalarRGBA(img.Pix, values, palette, lo, hi)
	return img
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
