package core

import (
	"errors"
	"testing"
	"time"
)

func TestNewFloatGridRejectsNonPositive(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 4}, {0, 0}} {
		if _, err := NewFloatGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewFloatGrid(%d,%d) err=%v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
}

func TestFloatGridWrap(t *testing.T) {
	g, err := NewFloatGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct{ x, y, wx, wy int }{
		{-1, -1, 2, 2},
		{3, 0, 0, 0},
		{1, 4, 1, 1},
		{-4, 5, 2, 2},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d)=(%d,%d), expected (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestFloatGridSetAtAndCopy(t *testing.T) {
	a, _ := NewFloatGrid(4, 2)
	b, _ := NewFloatGrid(4, 2)
	a.Set(3, 1, 2.5)
	if got := a.Cells()[a.Index(3, 1)]; got != 2.5 {
		t.Fatalf("cell (3,1)=%f, expected 2.5", got)
	}
	if err := b.CopyFrom(a); err != nil {
		t.Fatal(err)
	}
	if b.At(3, 1) != 2.5 {
		t.Fatalf("copy did not carry value, got %f", b.At(3, 1))
	}
	c, _ := NewFloatGrid(2, 2)
	if err := c.CopyFrom(a); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("mismatched copy err=%v", err)
	}
	if a.In(4, 0) || a.In(0, -1) || !a.In(0, 0) {
		t.Fatal("In reported wrong bounds")
	}
}

func TestIntervalFires(t *testing.T) {
	iv := NewInterval(3)
	fired := 0
	for i := 0; i < 9; i++ {
		if iv.Tick() {
			fired++
		}
	}
	if fired != 3 {
		t.Fatalf("fired %d times, expected 3", fired)
	}
	if got := FramesFor(550*time.Millisecond, 60); got != 33 {
		t.Fatalf("FramesFor(550ms, 60)=%d, expected 33", got)
	}
	if got := FramesFor(time.Millisecond, 60); got != 1 {
		t.Fatalf("FramesFor floor=%d, expected 1", got)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 16; i++ {
		if a.Range(2, 5) != b.Range(2, 5) {
			t.Fatal("same seed produced different sequences")
		}
	}
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		v := r.IntRange(3, 6)
		if v < 3 || v >= 6 {
			t.Fatalf("IntRange out of range: %d", v)
		}
	}
	if r.IntRange(4, 4) != 4 {
		t.Fatal("empty IntRange should return lo")
	}
}

func TestParseHelpers(t *testing.T) {
	cfg := map[string]string{"w": "12", "bad": "x", "neg": "-3", "f": "0.5", "b": "true"}
	w, bad, neg := 1, 2, 3
	ParseInt(cfg, "w", &w, Positive[int])
	ParseInt(cfg, "bad", &bad, nil)
	ParseInt(cfg, "neg", &neg, Positive[int])
	if w != 12 || bad != 2 || neg != 3 {
		t.Fatalf("ParseInt results w=%d bad=%d neg=%d", w, bad, neg)
	}
	f := 0.0
	ParseFloat(cfg, "f", &f, NonNegative[float64])
	b := false
	ParseBool(cfg, "b", &b)
	if f != 0.5 || !b {
		t.Fatalf("ParseFloat/ParseBool got %f %v", f, b)
	}
}

func TestParseFloatRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "Inf", "-Inf", "+Inf"} {
		f := 1.5
		ParseFloat(map[string]string{"f": raw}, "f", &f, nil)
		if f != 1.5 {
			t.Fatalf("ParseFloat(%q) overwrote value with %f", raw, f)
		}
	}
}
