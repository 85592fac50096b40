//go:build ebiten

package app

import (
	"image/color"
	"time"

	"chameleon/internal/core"
	"chameleon/internal/render"
	"chameleon/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sketch to the ebiten.Game interface.
type Game struct {
	sketch    core.Sketch
	canvas    *render.Canvas
	presenter *render.Presenter
	overlay   *ui.Overlay

	size     core.Size
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	err      error
}

// New constructs a Game for sk drawing on a size canvas. The sketch must
// already be set up.
func New(sk core.Sketch, size core.Size, scale int, seed int64) (*Game, error) {
	canvas, err := render.NewCanvas(size.W, size.H)
	if err != nil {
		return nil, err
	}
	return &Game{
		sketch:    sk,
		canvas:    canvas,
		presenter: render.NewPresenter(size.W, size.H),
		overlay:   ui.NewOverlay(sk),
		size:      size,
		scale:     scale,
		seed:      seed,
	}, nil
}

// Reset sets the sketch up again with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	g.tickOnce = false
	g.canvas.Clear(color.Black)
	if err := g.sketch.Setup(g.size, seed); err != nil {
		return err
	}
	core.Logger().Info("reset", "sketch", g.sketch.Name(), "seed", seed)
	return nil
}

// Update handles input and runs one sketch frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if err := g.forwardPointer(); err != nil {
		return err
	}

	g.overlay.SetPaused(g.paused)
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.tickOnce = false
		if err := g.sketch.Loop(g.canvas); err != nil {
			return err
		}
	}
	return nil
}

// forwardPointer passes the cursor to sketches that take pointer input
// while the left button is held.
func (g *Game) forwardPointer() error {
	h, ok := g.sketch.(core.PointerHandler)
	if !ok || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	cx, cy := ebiten.CursorPosition()
	x, y := ClampPointer(cx/g.scale, cy/g.scale, g.size)
	return h.Pointer(x, y)
}

// Draw presents the canvas and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.presenter.Blit(screen, g.canvas, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.W * g.scale, g.size.H * g.scale
}
