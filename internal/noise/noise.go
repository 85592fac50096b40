// Package noise provides the coherent noise sources sampled by the field
// engines and sketches.
package noise

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
)

// Source is a pure coherent noise function returning values in [-1, 1].
type Source interface {
	Noise3D(x, y, z float64) float64
}

// Func adapts an ordinary function to Source.
type Func func(x, y, z float64) float64

// Noise3D calls f(x, y, z).
func (f Func) Noise3D(x, y, z float64) float64 { return f(x, y, z) }

const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 3
)

// Perlin is a seeded Perlin noise generator.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin returns a Perlin source seeded with seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)}
}

// Noise2D samples the plane z = 0.
func (p *Perlin) Noise2D(x, y float64) float64 {
	return clamp(p.p.Noise2D(x, y))
}

// Noise3D samples the generator at (x, y, z).
func (p *Perlin) Noise3D(x, y, z float64) float64 {
	return clamp(p.p.Noise3D(x, y, z))
}

// Octaves layers detail octaves of a source, each at double the frequency
// and half the amplitude of the previous one.
type Octaves struct {
	Src    Source
	Detail int
}

// NewOctaves wraps src with the given octave count.
func NewOctaves(src Source, detail int) *Octaves {
	return &Octaves{Src: src, Detail: detail}
}

// Noise3D sums the octaves and clamps the result to [-1, 1].
func (o *Octaves) Noise3D(x, y, z float64) float64 {
	n := o.Src.Noise3D(x, y, z)
	amp := 1.0
	for f := 2; f <= o.Detail; f *= 2 {
		amp /= 2
		ff := float64(f)
		n += amp * o.Src.Noise3D(x*ff, y*ff, z*ff)
	}
	return clamp(n)
}

// Map linearly maps v from [inLo, inHi] to [outLo, outHi].
func Map(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
