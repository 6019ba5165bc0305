package pattern

import (
	"testing"

	"github.com/brindlefield/raytracer/internal/prim"
)

func TestPerlinNoiseIsDeterministicForSameSeed(t *testing.T) {
	inner := NewSolid(prim.White)
	p1 := NewPerlinNoise(inner, 0.2)
	p2 := NewPerlinNoise(inner, 0.2)

	point := prim.Point(1, 2, 3)
	got1 := p1.noise.octaveClamped01(point, p1.Scale)
	got2 := p2.noise.octaveClamped01(point, p2.Scale)
	if got1 != got2 {
		t.Errorf("perlin noise not deterministic across instances: %v != %v", got1, got2)
	}
}

func TestPerlinNoiseKeepsBlackBlack(t *testing.T) {
	// color_at_point(P) * (1 - noise) is black for any noise value when the
	// wrapped pattern is black, regardless of what the noise field samples.
	inner := NewSolid(prim.Black)
	p := NewPerlinNoise(inner, 0.2)
	checkColor(t, p.ColorAt(prim.Point(1, 2, 3)), prim.Black)
}

func TestPerlinNoiseDarkensInnerPattern(t *testing.T) {
	inner := NewSolid(prim.White)
	p := NewPerlinNoise(inner, 0.2)
	got := p.ColorAt(prim.Point(1, 2, 3))
	if got.R < 0 || got.R > 1 || got.G < 0 || got.G > 1 || got.B < 0 || got.B > 1 {
		t.Errorf("darkened channel out of range: %v", got)
	}
}

func TestGradientPerlinNoiseStaysWithinBlend(t *testing.T) {
	p := NewGradientPerlinNoise(prim.Black, prim.White, 0.0)
	got := p.ColorAt(prim.Point(0.25, 0, 0))
	if got.R < 0 || got.R > 1 {
		t.Errorf("blended channel out of range: %v", got)
	}
}
