//go:build ebiten

package ui

import (
	"image/color"

	"chameleon/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPadding = 6
	lineHeight     = 14
)

// Overlay draws the status line and the parameter list on top of the
// sketch. O toggles it and P toggles the parameter list.
type Overlay struct {
	sketch     core.Sketch
	show       bool
	showParams bool
	paused     bool
	backdrop   *ebiten.Image
	lines      []string
}

// NewOverlay constructs an overlay for sk.
func NewOverlay(sk core.Sketch) *Overlay {
	o := &Overlay{sketch: sk, show: true}
	o.backdrop = ebiten.NewImage(1, 1)
	o.backdrop.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	return o
}

// SetPaused records the host pause state for the status line.
func (o *Overlay) SetPaused(p bool) { o.paused = p }

// Update handles toggles and refreshes the text.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.show = !o.show
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showParams = !o.showParams
	}
	if !o.show {
		return
	}
	o.lines = o.lines[:0]
	o.lines = append(o.lines, StatusLine(o.sketch.Name(), ebiten.ActualFPS(), ebiten.ActualTPS(), o.paused))
	if o.showParams {
		if p, ok := o.sketch.(core.ParameterProvider); ok {
			o.lines = append(o.lines, ParameterLines(p.Parameters())...)
		}
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || len(o.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, l := range o.lines {
		width = max(width, text.BoundString(face, l).Dx())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*overlayPadding), float64(len(o.lines)*lineHeight+overlayPadding))
	screen.DrawImage(o.backdrop, op)
	for i, l := range o.lines {
		text.Draw(screen, l, face, overlayPadding, overlayPadding+10+i*lineHeight, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
