package life

import (
	"errors"
	"testing"

	"chameleon/internal/core"
	"chameleon/internal/render"
)

func setup(t *testing.T, w, h int, cfg Config) (*Sketch, *render.Canvas) {
	t.Helper()
	s := New(cfg)
	if err := s.Setup(core.Size{W: w, H: h}, 7); err != nil {
		t.Fatalf("setup: %v", err)
	}
	c, err := render.NewCanvas(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return s, c
}

func TestSetupSizesBoardFromSurface(t *testing.T) {
	s, _ := setup(t, 200, 100, DefaultConfig())
	if got := s.Engine().Size(); got != (core.Size{W: 100, H: 50}) {
		t.Fatalf("board %v, expected 100x50", got)
	}
	for i, v := range s.Engine().Cells() {
		if v != 0 && v != 1 {
			t.Fatalf("cell %d=%f, expected binary fill", i, v)
		}
	}
}

func TestLoopBeforeSetupFails(t *testing.T) {
	c, _ := render.NewCanvas(4, 4)
	if err := New(DefaultConfig()).Loop(c); !errors.Is(err, core.ErrNotInitialized) {
		t.Fatalf("err=%v, want ErrNotInitialized", err)
	}
}

func TestLoopDrawsLiveCells(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolution = 0.1
	cfg.Fade = 1
	s, c := setup(t, 50, 50, cfg)
	eng := s.Engine()
	for i := range eng.Cells() {
		eng.Cells()[i] = 0
	}
	// A block is stable, so it survives the step inside Loop.
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if err := eng.Set(p[0], p[1], 1); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Loop(c); err != nil {
		t.Fatal(err)
	}
	if px := c.Image().RGBAAt(10, 10); px.R == 0 && px.G == 0 && px.B == 0 {
		t.Fatal("live cell at (2,2) was not drawn")
	}
	if px := c.Image().RGBAAt(40, 40); px.R != 0 || px.G != 0 || px.B != 0 {
		t.Fatalf("dead region pixel %v, expected black", px)
	}
}

func TestSpawnerRevivesACell(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolution = 0.1
	cfg.SpawnMillis = 10
	cfg.TPS = 100
	s, _ := setup(t, 100, 100, cfg)
	for i := range s.Engine().Cells() {
		s.Engine().Cells()[i] = 0
	}
	if !s.spawn.Tick() {
		t.Fatal("interval of one frame should fire every tick")
	}
	if err := s.spawnCell(); err != nil {
		t.Fatal(err)
	}
	live := 0
	for _, v := range s.Engine().Cells() {
		if v == 1 {
			live++
		}
	}
	if live != 1 {
		t.Fatalf("expected exactly one spawned cell, got %d", live)
	}
}

func TestPointerSetsCellUnderCursor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolution = 0.1
	s, _ := setup(t, 100, 100, cfg)
	if err := s.Pointer(35, 72); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Engine().At(3, 7); v != 1 {
		t.Fatalf("cell (3,7)=%f, expected live", v)
	}
	if err := s.Pointer(1000, -5); err != nil {
		t.Fatalf("clamped pointer: %v", err)
	}
	if v, _ := s.Engine().At(9, 0); v != 1 {
		t.Fatalf("cell (9,0)=%f, expected live after clamping", v)
	}
}

func TestFromMapIgnoresMalformed(t *testing.T) {
	c := FromMap(map[string]string{"resolution": "0.05", "spawn_ms": "-3", "fade": "x"})
	if c.Resolution != 0.05 {
		t.Fatalf("resolution %f", c.Resolution)
	}
	def := DefaultConfig()
	if c.SpawnMillis != def.SpawnMillis || c.Fade != def.Fade {
		t.Fatalf("malformed values should keep defaults: %+v", c)
	}
}

func TestRegistered(t *testing.T) {
	f, ok := core.Sketches()["life"]
	if !ok {
		t.Fatal("life not registered")
	}
	if f(nil).Name() != "life" {
		t.Fatal("factory returned wrong sketch")
	}
}

func TestWolframRuleSeedsTopCentre(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rule = RuleWolfram
	cfg.Resolution = 0.1
	s, c := setup(t, 50, 50, cfg)
	for i, v := range s.Engine().Cells() {
		want := 0.0
		if i == 5 {
			want = 1
		}
		if v != want {
			t.Fatalf("cell %d=%f, expected %f", i, v, want)
		}
	}
	if err := s.Loop(c); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Engine().At(5, 1); v != 1 {
		t.Fatalf("seed cell should scroll to (5,1), got %f", v)
	}
}

func TestBrainRuleFromMap(t *testing.T) {
	c := FromMap(map[string]string{"rule": "brain", "code": "300"})
	if c.Rule != RuleBrain || c.Code != 90 {
		t.Fatalf("config %+v", c)
	}
	if FromMap(map[string]string{"rule": "seeds"}).Rule != RuleConway {
		t.Fatal("unknown rule should keep the default")
	}
}
