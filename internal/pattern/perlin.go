package pattern

import (
	"github.com/aquilax/go-perlin"
	"github.com/brindlefield/raytracer/internal/prim"
)

// perlin-noise tuning constants, matching original_source's
// perlin_noise_pattern defaults.
const (
	perlinAlpha    = 2.0
	perlinBeta     = 2.0
	perlinN        = int32(3)
	perlinSeed     = int64(100)
)

// noiseSource wraps github.com/aquilax/go-perlin's generator behind a
// package-local interface, so patterns that need noise don't depend on its
// concrete type directly.
type noiseSource struct {
	gen *perlin.Perlin
}

func newNoiseSource() *noiseSource {
	return &noiseSource{gen: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, perlinSeed)}
}

// clamp01 saturates x into [0, 1], mirroring original_source's
// octave_noise_3d_clamped_01 return contract.
func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// octaveClamped01 samples go-perlin's already-multi-octave noise (alpha,
// beta and n configure persistence, frequency multiplier and octave count
// at construction) at point*scale, rescales it from Noise3D's roughly
// [-1,1] range into [0,1], and clamps — the Go stand-in for
// original_source's perlin_noise::octave_noise_3d_clamped_01.
func (n *noiseSource) octaveClamped01(p prim.Tuple, scale float64) float64 {
	raw := n.gen.Noise3D(p.X*scale, p.Y*scale, p.Z*scale)
	return clamp01((raw + 1) / 2)
}

// PerlinNoise wraps a single sub-pattern and darkens its color by the
// clamped octave noise at that point, grounded on original_source's
// perlin_noise_pattern: color_at_point(P) * (1 - octave_noise_3d_clamped_01(P)).
// It does NOT apply the sub-pattern's own inverse transform before
// querying it — original_source's perlin_noise_pattern has the same
// asymmetry, so it is reproduced here rather than "fixed".
type PerlinNoise struct {
	Base
	inner Pattern
	noise *noiseSource
	Scale float64
}

// NewPerlinNoise wraps inner with Perlin-noise color darkening, sampling
// the noise field at point*scale (original_source default: 0.2).
func NewPerlinNoise(inner Pattern, scale float64) *PerlinNoise {
	return &PerlinNoise{Base: newBase(), inner: inner, noise: newNoiseSource(), Scale: scale}
}

func (p *PerlinNoise) ColorAt(point prim.Tuple) prim.Color {
	noise := p.noise.octaveClamped01(point, p.Scale)
	return p.inner.ColorAt(point).Scale(1 - noise)
}

// GradientPerlinNoise is the noise-perturbed variant of Gradient: instead
// of interpolating on the point's X coordinate, it interpolates between
// the two sub-patterns by the clamped octave noise value at that point,
// grounded on original_source's gradient_perlin_noise_pattern:
// color_a(P)*(1-noise) + color_b(P)*noise.
type GradientPerlinNoise struct {
	binary
	noise *noiseSource
	Scale float64
}

// NewGradientPerlinNoise builds a noise-perturbed gradient between a and b,
// sampling the noise field at point*scale.
func NewGradientPerlinNoise(a, b prim.Color, scale float64) *GradientPerlinNoise {
	return &GradientPerlinNoise{binary: newBinaryColors(a, b), noise: newNoiseSource(), Scale: scale}
}

func (p *GradientPerlinNoise) ColorAt(point prim.Tuple) prim.Color {
	noise := p.noise.octaveClamped01(point, p.Scale)
	a := p.colorA(point)
	b := p.colorB(point)
	return a.Scale(1 - noise).Add(b.Scale(noise))
}
