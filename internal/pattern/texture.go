package pattern

import "github.com/brindlefield/raytracer/internal/prim"

// Texture2D wraps a UVPattern with the UVMapper that projects a shape's
// local surface point onto the pattern's uv-space, grounded on
// original_source's texture_2d_pattern — generalized here to take a plain
// UVMapper function instead of a shape back-reference, since Go's
// pattern package cannot import the shape package without a cycle.
type Texture2D struct {
	Base
	Mapper  UVMapper
	UVPat   UVPattern
}

// NewTexture2D builds a texture pattern that projects through mapper
// before looking up colors in uvPat.
func NewTexture2D(mapper UVMapper, uvPat UVPattern) *Texture2D {
	return &Texture2D{Base: newBase(), Mapper: mapper, UVPat: uvPat}
}

func (p *Texture2D) ColorAt(point prim.Tuple) prim.Color {
	return p.UVPat.UVColorAt(p.Mapper(point))
}

// CubeFace identifies one of the six faces of an axis-aligned unit cube,
// used by CubeMap to pick which UVPattern governs a given surface point.
type CubeFace int

const (
	CubeFaceLeft CubeFace = iota
	CubeFaceRight
	CubeFaceFront
	CubeFaceBack
	CubeFaceUp
	CubeFaceDown
)

// CubeMap assigns an independent UVPattern to each of the six faces of a
// unit cube, grounded on original_source's uv_cube_map — whose face-UV
// formulas are an incomplete stub in the retrieved original, so the
// formulas below follow the standard "Ray Tracer Challenge" cube-mapping
// convention (spec §9 notes this mapping's axis assignment is an
// intentionally undocumented area free to be revisited).
type CubeMap struct {
	Base
	Faces [6]UVPattern
}

// NewCubeMap builds a cube map with no faces assigned; a face left nil
// (never given a pattern by SetFace) renders black.
func NewCubeMap() *CubeMap {
	return &CubeMap{Base: newBase()}
}

// SetFace installs the pattern governing one face of the cube.
func (p *CubeMap) SetFace(face CubeFace, pat UVPattern) {
	p.Faces[face] = pat
}

func (p *CubeMap) ColorAt(point prim.Tuple) prim.Color {
	face := faceOf(point)
	var uv UVPoint
	switch face {
	case CubeFaceLeft:
		uv = cubeUVLeft(point)
	case CubeFaceRight:
		uv = cubeUVRight(point)
	case CubeFaceFront:
		uv = cubeUVFront(point)
	case CubeFaceBack:
		uv = cubeUVBack(point)
	case CubeFaceUp:
		uv = cubeUVUp(point)
	default:
		uv = cubeUVDown(point)
	}
	pat := p.Faces[face]
	if pat == nil {
		return Black
	}
	return pat.UVColorAt(uv)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// faceOf determines which face of the cube a point on its surface lies
// on by finding the axis with the greatest magnitude, same predicate as
// the cube shape's own normal-selection logic.
func faceOf(p prim.Tuple) CubeFace {
	absX, absY, absZ := abs(p.X), abs(p.Y), abs(p.Z)
	coord := max3(absX, absY, absZ)

	switch {
	case coord == p.X:
		return CubeFaceRight
	case coord == -p.X:
		return CubeFaceLeft
	case coord == p.Y:
		return CubeFaceUp
	case coord == -p.Y:
		return CubeFaceDown
	case coord == p.Z:
		return CubeFaceFront
	default:
		return CubeFaceBack
	}
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func cubeUVFront(p prim.Tuple) UVPoint {
	u := prim.Mod(p.X+1, 2.0) / 2.0
	v := prim.Mod(p.Y+1, 2.0) / 2.0
	return UVPoint{U: u, V: v}
}

func cubeUVBack(p prim.Tuple) UVPoint {
	u := prim.Mod(1-p.X, 2.0) / 2.0
	v := prim.Mod(p.Y+1, 2.0) / 2.0
	return UVPoint{U: u, V: v}
}

func cubeUVLeft(p prim.Tuple) UVPoint {
	u := prim.Mod(p.Z+1, 2.0) / 2.0
	v := prim.Mod(p.Y+1, 2.0) / 2.0
	return UVPoint{U: u, V: v}
}

func cubeUVRight(p prim.Tuple) UVPoint {
	u := prim.Mod(1-p.Z, 2.0) / 2.0
	v := prim.Mod(p.Y+1, 2.0) / 2.0
	return UVPoint{U: u, V: v}
}

func cubeUVUp(p prim.Tuple) UVPoint {
	u := prim.Mod(p.X+1, 2.0) / 2.0
	v := prim.Mod(1-p.Z, 2.0) / 2.0
	return UVPoint{U: u, V: v}
}

func cubeUVDown(p prim.Tuple) UVPoint {
	u := prim.Mod(p.X+1, 2.0) / 2.0
	v := prim.Mod(p.Z+1, 2.0) / 2.0
	return UVPoint{U: u, V: v}
}
