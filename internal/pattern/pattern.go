package pattern

import (
	"math"

	"github.com/brindlefield/raytracer/internal/prim"
)

// Convenience re-exports so callers that only touch patterns don't need to
// import internal/prim purely for color constants.
var (
	White = prim.White
	Black = prim.Black
)

// Pattern is the polymorphic interface every pattern variant implements.
// ColorAt takes a point already expressed in the pattern's own local space
// (the caller — ColorAtShape below, or a composite pattern delegating to a
// sub-pattern — is responsible for having already applied InvTransform).
type Pattern interface {
	ColorAt(localPoint prim.Tuple) prim.Color
	Transform() prim.Matrix
	InvTransform() prim.Matrix
	SetTransform(m prim.Matrix)
}

// Base holds the affine transform shared by every pattern variant. Concrete
// patterns embed it to pick up Transform/InvTransform/SetTransform.
type Base struct {
	transform    prim.Matrix
	invTransform prim.Matrix
}

func newBase() Base {
	return Base{transform: prim.Identity4(), invTransform: prim.Identity4()}
}

func (b *Base) Transform() prim.Matrix    { return b.transform }
func (b *Base) InvTransform() prim.Matrix { return b.invTransform }

// SetTransform installs m as the pattern's transform and caches its
// inverse, mirroring the shape invariant that inv_transform is always kept
// in sync with transform (spec §3 INVARIANTS).
func (b *Base) SetTransform(m prim.Matrix) {
	b.transform = m
	b.invTransform = m.Inverse()
}

// localPointFor transforms point (already in the caller pattern's local
// space) into sub's local space by applying sub's own inverse transform —
// the per-level step of the "shape_inv -> pattern_inv -> pattern_inv -> ..."
// composition chain described in spec §4.2.
func localPointFor(sub Pattern, point prim.Tuple) prim.Tuple {
	return sub.InvTransform().MulTuple(point)
}

// ColorAtShape is the full composition chain from a world point down to a
// pattern color: world_to_object, then pat.inv_transform, then the
// pattern's own color_at_point — and, recursively inside composite
// patterns, one more inv_transform per nesting level. worldToObject must be
// the shape's full parent-chain world-to-object matrix (shape's own
// inv_transform composed with every ancestor's), not just the shape's own
// inv_transform, or a shape nested inside a transformed group samples its
// pattern in the wrong space.
func ColorAtShape(pat Pattern, worldToObject prim.Matrix, worldPoint prim.Tuple) prim.Color {
	shapePoint := worldToObject.MulTuple(worldPoint)
	patternPoint := pat.InvTransform().MulTuple(shapePoint)
	return pat.ColorAt(patternPoint)
}

// ---- solid ----

// Solid is a pattern returning a single constant color.
type Solid struct {
	Base
	Color prim.Color
}

// NewSolid builds a solid-color pattern.
func NewSolid(c prim.Color) *Solid {
	return &Solid{Base: newBase(), Color: c}
}

func (p *Solid) ColorAt(prim.Tuple) prim.Color { return p.Color }

// ---- binary pattern base (striped/gradient/ring/checkers/blended/gradient-ring) ----

// binary embeds the two sub-patterns every "two-color" pattern composes,
// mirroring original_source's binary_pattern<T> template: color_a/color_b
// query the sub-pattern after applying its own inverse transform.
type binary struct {
	Base
	a, b Pattern
}

func newBinary(a, b Pattern) binary {
	return binary{Base: newBase(), a: a, b: b}
}

// newBinaryColors builds a binary pattern from two plain colors, wrapping
// each in a Solid — the teacher-less but original_source-grounded
// convenience constructor every concrete binary pattern exposes.
func newBinaryColors(a, b prim.Color) binary {
	return newBinary(NewSolid(a), NewSolid(b))
}

func (p *binary) colorA(point prim.Tuple) prim.Color {
	return p.a.ColorAt(localPointFor(p.a, point))
}

func (p *binary) colorB(point prim.Tuple) prim.Color {
	return p.b.ColorAt(localPointFor(p.b, point))
}

// ---- striped ----

type Striped struct{ binary }

func NewStriped(a, b prim.Color) *Striped             { return &Striped{newBinaryColors(a, b)} }
func NewStripedPatterns(a, b Pattern) *Striped         { return &Striped{newBinary(a, b)} }
func (p *Striped) ColorAt(point prim.Tuple) prim.Color {
	if mod2(prim.FastFloor(point.X)) == 0 {
		return p.colorA(point)
	}
	return p.colorB(point)
}

// ---- gradient ----

type Gradient struct{ binary }

func NewGradient(a, b prim.Color) *Gradient     { return &Gradient{newBinaryColors(a, b)} }
func NewGradientPatterns(a, b Pattern) *Gradient { return &Gradient{newBinary(a, b)} }

func (p *Gradient) ColorAt(point prim.Tuple) prim.Color {
	a := p.colorA(point)
	b := p.colorB(point)
	fraction := point.X - float64(prim.FastFloor(point.X))
	return a.Add(b.Sub(a).Scale(fraction))
}

// ---- ring ----

type Ring struct{ binary }

func NewRing(a, b prim.Color) *Ring     { return &Ring{newBinaryColors(a, b)} }
func NewRingPatterns(a, b Pattern) *Ring { return &Ring{newBinary(a, b)} }

func (p *Ring) ColorAt(point prim.Tuple) prim.Color {
	d := sqrtSum(point.X*point.X, point.Z*point.Z)
	if mod2(prim.FastFloor(d)) == 0 {
		return p.colorA(point)
	}
	return p.colorB(point)
}

// ---- checkers ----

type Checkers struct{ binary }

func NewCheckers(a, b prim.Color) *Checkers     { return &Checkers{newBinaryColors(a, b)} }
func NewCheckersPatterns(a, b Pattern) *Checkers { return &Checkers{newBinary(a, b)} }

func (p *Checkers) ColorAt(point prim.Tuple) prim.Color {
	sum := prim.FastFloor(point.X) + prim.FastFloor(point.Y) + prim.FastFloor(point.Z)
	if mod2(sum) == 0 {
		return p.colorA(point)
	}
	return p.colorB(point)
}

// ---- blended ----

type Blended struct{ binary }

func NewBlended(a, b prim.Color) *Blended     { return &Blended{newBinaryColors(a, b)} }
func NewBlendedPatterns(a, b Pattern) *Blended { return &Blended{newBinary(a, b)} }

func (p *Blended) ColorAt(point prim.Tuple) prim.Color {
	return p.colorA(point).Add(p.colorB(point)).Scale(0.5)
}

// ---- gradient-ring ----

type GradientRing struct{ binary }

func NewGradientRing(a, b prim.Color) *GradientRing     { return &GradientRing{newBinaryColors(a, b)} }
func NewGradientRingPatterns(a, b Pattern) *GradientRing { return &GradientRing{newBinary(a, b)} }

func (p *GradientRing) ColorAt(point prim.Tuple) prim.Color {
	mag := sqrtSum(point.X*point.X, point.Z*point.Z)
	a := p.colorA(point)
	b := p.colorB(point)
	return a.Add(b.Sub(a).Scale(mag))
}

func sqrtSum(a, b float64) float64 {
	return math.Sqrt(a + b)
}

// mod2 is the non-negative modulus by 2, matching the "(x % 2) == 0" checks
// in original_source (C++ `%` on a non-negative fast_floor result never
// needs the general Mod helper, but negative floors do).
func mod2(x int) int {
	m := x % 2
	if m < 0 {
		m += 2
	}
	return m
}
