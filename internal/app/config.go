package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"chameleon/internal/core"
)

// ErrUnknownSketch is returned when the requested sketch is not registered.
var ErrUnknownSketch = errors.New("unknown sketch")

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends value after checking it has the key=value form.
func (l *KVList) Set(value string) error {
	if k, _, ok := strings.Cut(value, "="); !ok || k == "" {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the overrides as a map. Later entries win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[k] = v
	}
	return m
}

// Config represents the command-line parameters shared by both hosts.
type Config struct {
	Sketch  string
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Frames  int
	Out     string
	Seeds   int
	Workers int
	Verbose bool
	Set     KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sketch:  "marching",
		Width:   320,
		Height:  240,
		Scale:   2,
		TPS:     60,
		Seed:    42,
		Frames:  120,
		Out:     "sketch.png",
		Seeds:   1,
		Workers: runtime.NumCPU(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sketch, "sketch", c.Sketch, "sketch to run ("+strings.Join(core.SketchNames(), ", ")+")")
	fs.IntVar(&c.Width, "w", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "h", c.Height, "surface height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for sketch setup")
	fs.IntVar(&c.Frames, "frames", c.Frames, "frames to render before writing output")
	fs.StringVar(&c.Out, "out", c.Out, "output PNG path")
	fs.IntVar(&c.Seeds, "seeds", c.Seeds, "number of consecutive seeds to render")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel renders when -seeds > 1")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
	fs.Var(&c.Set, "set", "sketch parameter override in key=value form (repeatable)")
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface %dx%d: %w", c.Width, c.Height, core.ErrInvalidDimension)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.TPS)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames %d must not be negative", c.Frames)
	}
	if c.Seeds <= 0 {
		return fmt.Errorf("seeds %d must be positive", c.Seeds)
	}
	if _, ok := core.Sketches()[c.Sketch]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownSketch, c.Sketch)
	}
	return nil
}

// SketchConfig returns the map forwarded to the sketch factory. The host
// tick rate is included unless an override names it.
func (c *Config) SketchConfig() map[string]string {
	m := c.Set.Map()
	if _, ok := m["tps"]; !ok {
		m["tps"] = strconv.Itoa(c.TPS)
	}
	return m
}

// NewSketch constructs the configured sketch.
func (c *Config) NewSketch() (core.Sketch, error) {
	factory, ok := core.Sketches()[c.Sketch]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSketch, c.Sketch)
	}
	return factory(c.SketchConfig()), nil
}

// Size returns the configured surface size.
func (c *Config) Size() core.Size {
	return core.Size{W: c.Width, H: c.Height}
}

// OutputPath returns where the render for seed goes. With several seeds
// the seed is appended to the file stem.
func (c *Config) OutputPath(seed int64) string {
	if c.Seeds <= 1 {
		return c.Out
	}
	ext := filepath.Ext(c.Out)
	stem := strings.TrimSuffix(c.Out, ext)
	return fmt.Sprintf("%s-%d%s", stem, seed, ext)
}

// NewLogger returns a text logger on w at info, or debug with -v.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
