//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Presenter uploads a Canvas into an ebiten image and draws it scaled.
type Presenter struct {
	w, h int
	img  *ebiten.Image
}

// NewPresenter allocates a presenter for a canvas of size w*h.
func NewPresenter(w, h int) *Presenter {
	return &Presenter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads the canvas pixels into the presenter image and draws it.
func (p *Presenter) Blit(dst *ebiten.Image, c *Canvas, scale int) {
	src := c.Image()
	if src.Rect.Dx() != p.w || src.Rect.Dy() != p.h {
		return
	}
	p.img.WritePixels(src.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Presenter) Size() (int, int) { return p.w, p.h }
