package wave

import (
	"errors"
	"math"
	"testing"

	"chameleon/internal/core"
)

func newEngine(t *testing.T, w, h int) *Engine {
	t.Helper()
	e := New()
	if err := e.Initialize(w, h, 0); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return e
}

func TestInitializeRejectsInvalidDimension(t *testing.T) {
	e := New()
	if err := e.Initialize(0, 4, 0); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("err=%v, want ErrInvalidDimension", err)
	}
	if e.Ready() {
		t.Fatal("engine must stay uninitialized")
	}
}

func TestInitializeFillsBothBuffers(t *testing.T) {
	e := New()
	if err := e.Initialize(3, 2, 0.5); err != nil {
		t.Fatal(err)
	}
	for i, v := range e.Current().Cells() {
		if v != 0.5 || e.Previous().Cells()[i] != 0.5 {
			t.Fatalf("cell %d not initialized to 0.5", i)
		}
	}
}

func TestUninitializedOperationsFail(t *testing.T) {
	e := New()
	if err := e.Advance(0.9); !errors.Is(err, core.ErrNotInitialized) {
		t.Fatalf("Advance err=%v", err)
	}
	if err := e.Perturb(0, 0, 1); !errors.Is(err, core.ErrNotInitialized) {
		t.Fatalf("Perturb err=%v", err)
	}
	if err := e.Swap(); !errors.Is(err, core.ErrNotInitialized) {
		t.Fatalf("Swap err=%v", err)
	}
	if _, err := e.Sample(0, 0); !errors.Is(err, core.ErrNotInitialized) {
		t.Fatalf("Sample err=%v", err)
	}
	if err := e.Frame(1, 0.9); !errors.Is(err, core.ErrNotInitialized) {
		t.Fatalf("Frame err=%v", err)
	}
}

func TestPerturbOutOfBounds(t *testing.T) {
	e := newEngine(t, 4, 3)
	for _, p := range [][2]int{{4, 0}, {0, 3}, {-1, 1}, {1, -1}, {10, 10}} {
		if err := e.Perturb(p[0], p[1], 1); !errors.Is(err, core.ErrOutOfBounds) {
			t.Fatalf("Perturb(%d,%d) err=%v, want ErrOutOfBounds", p[0], p[1], err)
		}
	}
	for i, v := range e.Current().Cells() {
		if v != 0 {
			t.Fatalf("failed perturb wrote cell %d", i)
		}
	}
}

func TestPerturbThenSample(t *testing.T) {
	e := newEngine(t, 5, 5)
	if err := e.Perturb(2, 3, 255); err != nil {
		t.Fatal(err)
	}
	v, err := e.Sample(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if v != 255 {
		t.Fatalf("sample=%f, expected 255", v)
	}
}

func TestNullInputStaysZero(t *testing.T) {
	e := newEngine(t, 6, 5)
	for i := 0; i < 2; i++ {
		if err := e.Advance(1); err != nil {
			t.Fatal(err)
		}
		if err := e.Swap(); err != nil {
			t.Fatal(err)
		}
	}
	for _, g := range []*core.FloatGrid{e.Current(), e.Previous()} {
		for i, v := range g.Cells() {
			if v != 0 {
				t.Fatalf("cell %d=%f after null frames", i, v)
			}
		}
	}
}

func TestAdvanceInteriorAndBorders(t *testing.T) {
	e := newEngine(t, 4, 4)
	e.Previous().Fill(1)
	if err := e.Advance(0.88); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got, _ := e.Sample(x, y)
			want := 0.0
			if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
				want = 1.76
			}
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("cell (%d,%d)=%f, expected %f", x, y, got, want)
			}
		}
	}
}

func TestSwapExchangesByReference(t *testing.T) {
	e := newEngine(t, 3, 3)
	cur, prev := e.Current(), e.Previous()
	if err := e.Swap(); err != nil {
		t.Fatal(err)
	}
	if e.Current() != prev || e.Previous() != cur {
		t.Fatal("swap did not exchange buffer roles")
	}
}

func TestLatestTracksAdvanceAndSwap(t *testing.T) {
	e := newEngine(t, 3, 3)
	if err := e.Advance(0.9); err != nil {
		t.Fatal(err)
	}
	advanced := e.Current()
	if e.Latest() != advanced {
		t.Fatal("Latest before swap should be current")
	}
	if err := e.Swap(); err != nil {
		t.Fatal(err)
	}
	if e.Latest() != advanced {
		t.Fatal("Latest after swap should follow the advanced buffer")
	}
}

func TestRippleSpreadsFromPerturbation(t *testing.T) {
	e := newEngine(t, 9, 9)
	if err := e.Perturb(4, 4, 1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := e.Frame(0, 0.9); err != nil {
			t.Fatal(err)
		}
	}
	neighbor := e.Latest().At(4, 3)
	if neighbor == 0 {
		t.Fatal("ripple did not reach the neighbouring cell")
	}
	for x := 0; x < 9; x++ {
		if e.Latest().At(x, 0) != 0 || e.Latest().At(x, 8) != 0 {
			t.Fatalf("border column %d was written", x)
		}
	}
}
