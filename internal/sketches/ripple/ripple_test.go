package ripple

import (
	"errors"
	"testing"

	"chameleon/internal/core"
	"chameleon/internal/render"
)

func setup(t *testing.T, w, h int, cfg Config) (*Sketch, *render.Canvas) {
	t.Helper()
	s := New(cfg)
	if err := s.Setup(core.Size{W: w, H: h}, 5); err != nil {
		t.Fatalf("setup: %v", err)
	}
	c, err := render.NewCanvas(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return s, c
}

func TestSetupMatchesSurface(t *testing.T) {
	s, _ := setup(t, 64, 48, DefaultConfig())
	if got := s.Engine().Size(); got != (core.Size{W: 64, H: 48}) {
		t.Fatalf("field %v, expected 64x48", got)
	}
	if len(s.Engine().Sources()) != 1 {
		t.Fatalf("expected one fish, got %d", len(s.Engine().Sources()))
	}
}

func TestSetupRejectsUnknownPalette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = "plaid"
	if err := New(cfg).Setup(core.Size{W: 8, H: 8}, 1); err == nil {
		t.Fatal("expected palette error")
	}
}

func TestSetupRejectsEmptySurface(t *testing.T) {
	if err := New(DefaultConfig()).Setup(core.Size{W: 0, H: 8}, 1); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("err=%v, want ErrInvalidDimension", err)
	}
}

func TestRaindropsStayInsideMargin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fish = 0
	s, _ := setup(t, 60, 60, cfg)
	for i := 0; i < 200; i++ {
		if err := s.raindrop(); err != nil {
			t.Fatal(err)
		}
	}
	field := s.Engine().Current()
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			inside := x >= 15 && x < 45 && y >= 15 && y < 45
			if !inside && field.At(x, y) != 0 {
				t.Fatalf("raindrop at (%d,%d) outside margin", x, y)
			}
		}
	}
}

func TestFishTargetsKeepFootprintInside(t *testing.T) {
	for _, useNoise := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.Fish = 4
		cfg.FishRadius = 3
		cfg.UseNoise = useNoise
		s, _ := setup(t, 20, 12, cfg)
		for i := 0; i < 50; i++ {
			s.retarget()
			for _, f := range s.fish {
				x, y := int(f.Target.X), int(f.Target.Y)
				if x < 0 || y < 0 || x+cfg.FishRadius-1 >= 20 || y+cfg.FishRadius-1 >= 12 {
					t.Fatalf("noise=%v target (%d,%d) footprint leaves the field", useNoise, x, y)
				}
			}
		}
	}
}

func TestLoopRunsManyFrames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TPS = 10
	cfg.Fish = 3
	s, c := setup(t, 48, 48, cfg)
	for i := 0; i < 40; i++ {
		if err := s.Loop(c); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	if render.Energy(s.Engine().Latest().Cells()) == 0 {
		t.Fatal("field stayed flat despite fish and raindrops")
	}
}

func TestPointerPerturbs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fish = 0
	s, _ := setup(t, 16, 16, cfg)
	if err := s.Pointer(4, 9); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Engine().Sample(4, 9); v != 255 {
		t.Fatalf("pointer cell=%f, expected 255", v)
	}
	if err := s.Pointer(16, 0); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("err=%v, want ErrOutOfBounds", err)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"damping": "0.5", "fish": "3", "use_noise": "true", "palette": "viridis", "tick_factor": "1.5"})
	if c.Damping != 0.5 || c.Fish != 3 || !c.UseNoise || c.Palette != "viridis" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.TickFactor != DefaultConfig().TickFactor {
		t.Fatalf("divergent tick factor accepted: %f", c.TickFactor)
	}
}

func TestFromMapRejectsZeroDampingAndNonFiniteMagnitude(t *testing.T) {
	def := DefaultConfig()
	for _, raw := range []map[string]string{
		{"damping": "0"},
		{"damping": "1.01"},
		{"damping": "NaN"},
		{"magnitude": "NaN"},
		{"magnitude": "Inf"},
	} {
		c := FromMap(raw)
		if c.Damping != def.Damping || c.Magnitude != def.Magnitude {
			t.Fatalf("%v accepted: damping %f magnitude %f", raw, c.Damping, c.Magnitude)
		}
	}
	if c := FromMap(map[string]string{"damping": "1"}); c.Damping != 1 {
		t.Fatalf("damping 1 rejected: %f", c.Damping)
	}
}
