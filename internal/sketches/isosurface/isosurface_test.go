package isosurface

import (
	"errors"
	"testing"

	"chameleon/internal/core"
	"chameleon/internal/render"
)

func TestSetupScattersBlobs(t *testing.T) {
	s := New(DefaultConfig())
	if err := s.Setup(core.Size{W: 80, H: 40}, 5); err != nil {
		t.Fatal(err)
	}
	if got := s.Engine().Size(); got != (core.Size{W: 20, H: 10}) {
		t.Fatalf("grid %v, expected 20x10", got)
	}
	if n := len(s.Blobs()); n != 10 {
		t.Fatalf("%d blobs, expected 10", n)
	}
	for i, b := range s.Blobs() {
		if b.Radius < 15 || b.Radius > 20 {
			t.Fatalf("blob %d radius %f outside [15,20]", i, b.Radius)
		}
		if b.Velocity.X < 0.1 || b.Velocity.X > 0.5 || b.Velocity.Y < 0.1 || b.Velocity.Y > 0.5 {
			t.Fatalf("blob %d velocity %v outside [0.1,0.5]", i, b.Velocity)
		}
	}
}

func TestSetupSmallerThanOneCellFails(t *testing.T) {
	if err := New(DefaultConfig()).Setup(core.Size{W: 2, H: 2}, 1); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("err=%v, want ErrInvalidDimension", err)
	}
}

func TestLoopBeforeSetupFails(t *testing.T) {
	c, err := render.NewCanvas(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := New(DefaultConfig()).Loop(c); !errors.Is(err, core.ErrNotInitialized) {
		t.Fatalf("err=%v, want ErrNotInitialized", err)
	}
}

func TestShadeBeforeFirstBandIsRedOnly(t *testing.T) {
	s := New(DefaultConfig())
	// Zero moduli give NaN bands, which read as 0.
	if got := s.Shade(300); got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Fatalf("shade %v, expected saturated red", got)
	}
	s.tint.green, s.tint.blue = 50, 100
	if got := s.Shade(120); got.R != 120 || got.G != 105 || got.B != 105 {
		t.Fatalf("shade %v, expected (120,105,105)", got)
	}
}

func TestTintRetargetsWhenBandReached(t *testing.T) {
	rng := core.NewRNG(1)
	c := tint{t: 0.995, greenT: 100, blueT: 200}
	c.advance(0.01, rng)
	if c.t != 0 || c.green != 0 {
		t.Fatalf("t=%f green=%f, expected wrap to 0", c.t, c.green)
	}
	c = tint{t: 0.5, greenT: 100, blueT: 200}
	c.advance(0.5, rng)
	if c.greenT < 10 || c.greenT >= 20 || c.blueT < 10 || c.blueT >= 20 {
		t.Fatalf("targets %f/%f, expected both redrawn from [10,20)", c.greenT, c.blueT)
	}
}

func TestLoopMovesBlobsAndPaints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolution = 1
	s := New(cfg)
	if err := s.Setup(core.Size{W: 30, H: 20}, 3); err != nil {
		t.Fatal(err)
	}
	start := s.Blobs()[0].Position
	c, err := render.NewCanvas(30, 20)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Loop(c); err != nil {
		t.Fatal(err)
	}
	if s.Blobs()[0].Position == start {
		t.Fatal("blob did not move")
	}
	img := c.Image()
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 0 {
			t.Fatalf("pixel %d has no red; the field is positive everywhere", i/4)
		}
	}
}
