package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"chameleon/internal/core"
)

// Canvas is a software drawing surface backed by a gg context. It is the
// only place sketch frame data turns into pixels.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas allocates a w x h canvas cleared to black.
func NewCanvas(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas %dx%d: %w", w, h, core.ErrInvalidDimension)
	}
	c := &Canvas{dc: gg.NewContext(w, h)}
	c.dc.SetLineCapRound()
	c.Clear(color.Black)
	return c, nil
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() core.Size {
	return core.Size{W: c.dc.Width(), H: c.dc.Height()}
}

// Clear paints the whole canvas with col, blending when col is translucent.
func (c *Canvas) Clear(col color.Color) {
	_, _, _, a := col.RGBA()
	if a == 0xffff {
		c.dc.SetColor(col)
		c.dc.Clear()
		return
	}
	s := c.Size()
	c.FillRect(0, 0, float64(s.W), float64(s.H), col)
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

// FillCircle fills a disc.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	c.dc.SetColor(col)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Fill()
}

// StrokeLine strokes a round-capped line segment.
func (c *Canvas) StrokeLine(a, b core.Point, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.dc.Stroke()
}

// DrawImage composites img with its top-left corner at (x, y).
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// Image returns the backing pixel buffer.
func (c *Canvas) Image() *image.RGBA {
	if img, ok := c.dc.Image().(*image.RGBA); ok {
		return img
	}
	b := c.dc.Image().Bounds()
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, c.dc.Image().At(x, y))
		}
	}
	return img
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

var _ core.Surface = (*Canvas)(nil)
