package pattern

import (
	"math"

	"github.com/brindlefield/raytracer/internal/canvas"
	"github.com/brindlefield/raytracer/internal/prim"
)

// UVPattern is the interface a uv-space-only pattern implements: it never
// sees a 3-D point, only the 2-D coordinate a UVMapper has already
// projected a shape's surface point onto.
type UVPattern interface {
	UVColorAt(uv UVPoint) prim.Color
}

// UVCheckers tiles u_color/v_color into a WxH checkerboard over [0,1]x[0,1]
// uv-space, grounded on original_source's uv_checkers.
type UVCheckers struct {
	UWidth, VHeight int
	UColor, VColor  prim.Color
}

// NewUVCheckers builds a uv-space checkerboard of the given tile counts.
func NewUVCheckers(uWidth int, uColor prim.Color, vHeight int, vColor prim.Color) *UVCheckers {
	return &UVCheckers{UWidth: uWidth, VHeight: vHeight, UColor: uColor, VColor: vColor}
}

func (p *UVCheckers) UVColorAt(uv UVPoint) prim.Color {
	u2 := prim.FastFloor(uv.U * float64(p.UWidth))
	v2 := prim.FastFloor(uv.V * float64(p.VHeight))
	if mod2(u2+v2) == 0 {
		return p.UColor
	}
	return p.VColor
}

// UVNoise computes a perlin-noise-perturbed uv color by routing the
// uv-point through a GradientPerlinNoise pattern treated as a flat (z=0)
// 3-D point, reusing that pattern's math rather than duplicating it —
// mirroring original_source's uv_noise, which does the same via
// gradient_perlin_noise_pattern.
type UVNoise struct {
	grad *GradientPerlinNoise
}

// NewUVNoise builds a uv-space perlin-noise gradient between u and v.
func NewUVNoise(u, v prim.Color, scale float64) *UVNoise {
	return &UVNoise{grad: NewGradientPerlinNoise(u, v, scale)}
}

func (p *UVNoise) UVColorAt(uv UVPoint) prim.Color {
	return p.grad.ColorAt(prim.Point(uv.U, uv.V, 0.0))
}

// UVAlignCheck marks the four quadrant-corners plus center of a uv tile
// with distinct colors, letting a scene author visually verify a texture's
// orientation/alignment is not flipped or rotated — supplemented from
// original_source's align_check_pattern (spec §9 notes uv-mapping axis
// conventions are ambiguous, so this is the debugging aid the original
// provides for working that out by eye).
type UVAlignCheck struct {
	Main, UL, UR, BL, BR prim.Color
}

// NewUVAlignCheck builds the five-color alignment-check swatch.
func NewUVAlignCheck(main, ul, ur, bl, br prim.Color) *UVAlignCheck {
	return &UVAlignCheck{Main: main, UL: ul, UR: ur, BL: bl, BR: br}
}

func (p *UVAlignCheck) UVColorAt(uv UVPoint) prim.Color {
	switch {
	case uv.V > 0.8:
		switch {
		case uv.U < 0.2:
			return p.UL
		case uv.U > 0.8:
			return p.UR
		}
	case uv.V < 0.2:
		switch {
		case uv.U < 0.2:
			return p.BL
		case uv.U > 0.8:
			return p.BR
		}
	}
	return p.Main
}

// UVImage samples a loaded canvas as a uv-mapped texture: v=0 is the
// canvas's bottom row, matching image-space's top-left origin being
// flipped relative to uv-space's bottom-left origin. Grounded on
// original_source's uv_image (referenced by render_nasa_blue_earth.cpp's
// uv_image(earth_map_canvas), its header wasn't part of the retrieved
// source but its call sites fix the (canvas, uv) -> color contract).
type UVImage struct {
	canvas *canvas.Canvas
}

// NewUVImage builds a uv-image pattern backed by an already-loaded canvas,
// e.g. one produced by canvas.LoadTexture.
func NewUVImage(c *canvas.Canvas) *UVImage {
	return &UVImage{canvas: c}
}

// NewUVImageFromFile decodes an image file straight into a uv-image
// pattern, the usual way a scene wires a texture map onto a shape.
// maxWidth/maxHeight of 0 skip resampling.
func NewUVImageFromFile(path string, maxWidth, maxHeight int) (*UVImage, error) {
	tex, err := canvas.LoadTexture(path, maxWidth, maxHeight)
	if err != nil {
		return nil, err
	}
	return NewUVImage(tex), nil
}

func (p *UVImage) UVColorAt(uv UVPoint) prim.Color {
	x := clampIndex(math.Round(uv.U*float64(p.canvas.Width-1)), p.canvas.Width-1)
	y := clampIndex(math.Round((1-uv.V)*float64(p.canvas.Height-1)), p.canvas.Height-1)
	return p.canvas.At(x, y)
}

// clampIndex guards against uv coordinates landing exactly on or just past
// the [0,1] boundary (e.g. a seam at u=1.0) rounding outside the canvas.
func clampIndex(v float64, max int) int {
	i := int(v)
	switch {
	case i < 0:
		return 0
	case i > max:
		return max
	default:
		return i
	}
}

// ---- mapping from a shape's local point onto a uv-point ----

// UVMapper projects a shape-local surface point onto a 2-D texture
// coordinate. It is a plain function value — not a shape method — so
// Texture2D/CubeMap can depend on it without importing internal/shape and
// creating a pattern<->shape import cycle (shape already depends on
// material, which depends on pattern).
type UVMapper func(point prim.Tuple) UVPoint

// SphericalMap maps a point on a unit sphere to a uv-point, grounded on
// original_source's spherical_map.
func SphericalMap(p prim.Tuple) UVPoint {
	theta := math.Atan2(p.X, p.Z)
	radius := p.Magnitude()
	phi := math.Acos(p.Y / radius)

	rawU := theta / (2 * math.Pi)
	u := 1 - (rawU + 0.5)
	v := 1.0 - phi/math.Pi

	return UVPoint{U: u, V: v}
}

// PlanarMap maps a point on an (infinite) xz-plane to a repeating
// [0,1)x[0,1) uv tile, grounded on original_source's planar_map.
func PlanarMap(p prim.Tuple) UVPoint {
	return UVPoint{U: prim.Mod(p.X, 1.0), V: prim.Mod(p.Z, 1.0)}
}

// CylindricalMap maps a point on a unit cylinder to a uv-point: u wraps
// around the circumference, v repeats along the height. Supplemented
// alongside spherical/planar since original_source's cylinder uses
// planar_map on its caps but has no dedicated lateral-surface mapper.
func CylindricalMap(p prim.Tuple) UVPoint {
	theta := math.Atan2(p.X, p.Z)
	rawU := theta / (2 * math.Pi)
	u := 1 - (rawU + 0.5)
	v := prim.Mod(p.Y, 1.0)
	return UVPoint{U: u, V: v}
}
