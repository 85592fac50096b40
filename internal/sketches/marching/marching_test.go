package marching

import (
	"errors"
	"math"
	"testing"

	"chameleon/internal/core"
	"chameleon/internal/render"
)

func TestSetupCoversFarEdges(t *testing.T) {
	s := New(DefaultConfig())
	if err := s.Setup(core.Size{W: 200, H: 100}, 3); err != nil {
		t.Fatal(err)
	}
	// resolution = 200 * 0.02 = 4
	if got := s.Engine().Size(); got != (core.Size{W: 51, H: 26}) {
		t.Fatalf("grid %v, expected 51x26", got)
	}
	if s.Engine().Resolution() != 4 {
		t.Fatalf("resolution %f, expected 4", s.Engine().Resolution())
	}
}

func TestSetupRejectsEmptySurface(t *testing.T) {
	if err := New(DefaultConfig()).Setup(core.Size{}, 1); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("err=%v, want ErrInvalidDimension", err)
	}
}

func TestLoopMatchesEngineIsolines(t *testing.T) {
	s := New(DefaultConfig())
	if err := s.Setup(core.Size{W: 100, H: 100}, 11); err != nil {
		t.Fatal(err)
	}
	c, err := render.NewCanvas(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Loop(c); err != nil {
			t.Fatal(err)
		}
	}
	for i, v := range s.Engine().Cells() {
		if math.IsNaN(v) || v < -1 || v > 1 {
			t.Fatalf("cell %d=%f outside [-1,1]", i, v)
		}
	}
	segs, err := s.Engine().ExtractIsolines(0)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for range segs {
		n++
	}
	if n != s.Segments() {
		t.Fatalf("drew %d segments, engine yields %d", s.Segments(), n)
	}
	if z := s.rule.Z(); math.Abs(z-0.09) > 1e-9 {
		t.Fatalf("z offset %f after three frames, expected 0.09", z)
	}
}

func TestLoopBeforeSetupFails(t *testing.T) {
	c, _ := render.NewCanvas(4, 4)
	if err := New(DefaultConfig()).Loop(c); !errors.Is(err, core.ErrNotInitialized) {
		t.Fatalf("err=%v, want ErrNotInitialized", err)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"octaves": "4", "threshold": "2", "discs": "false"})
	if c.Octaves != 4 || c.Discs {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.Threshold != 0 {
		t.Fatalf("out of range threshold accepted: %f", c.Threshold)
	}
}
