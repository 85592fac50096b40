package flowfield

import (
	"errors"
	"math"
	"testing"

	"chameleon/internal/core"
	"chameleon/internal/render"
)

func TestSetupGridFromResolution(t *testing.T) {
	s := New(DefaultConfig())
	if err := s.Setup(core.Size{W: 200, H: 110}, 1); err != nil {
		t.Fatal(err)
	}
	if got := s.Engine().Size(); got != (core.Size{W: 8, H: 4}) {
		t.Fatalf("grid %v, expected 8x4", got)
	}
}

func TestSetupSmallerThanOneCellFails(t *testing.T) {
	if err := New(DefaultConfig()).Setup(core.Size{W: 10, H: 10}, 1); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("err=%v, want ErrInvalidDimension", err)
	}
}

func TestHeadingSpansTurns(t *testing.T) {
	s := New(DefaultConfig())
	if h := s.Heading(1); math.Abs(h-8*math.Pi) > 1e-9 {
		t.Fatalf("heading(1)=%f, expected 8*pi", h)
	}
	if h := s.Heading(0); h != 0 {
		t.Fatalf("heading(0)=%f", h)
	}
}

func TestLoopAdvancesAndDraws(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolution = 10
	s := New(cfg)
	if err := s.Setup(core.Size{W: 60, H: 40}, 9); err != nil {
		t.Fatal(err)
	}
	c, err := render.NewCanvas(60, 40)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := s.Loop(c); err != nil {
			t.Fatal(err)
		}
	}
	if z := s.rule.Z(); math.Abs(z-0.006) > 1e-9 {
		t.Fatalf("z=%f after two frames, expected 0.006", z)
	}
	lit := 0
	img := c.Image()
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i]|img.Pix[i+1]|img.Pix[i+2] != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("no strokes were drawn")
	}
}
