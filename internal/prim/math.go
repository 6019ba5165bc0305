// Package prim implements the numeric primitives of the renderer: tuples
// (points and vectors), colors, 4x4 matrices, rays, and the handful of
// scalar helpers (epsilon compare, clamp, modulus, quadratic roots) that the
// geometry and shading layers build on.
package prim

import "math"

// Epsilon is the tolerance used throughout the renderer for floating-point
// comparisons: surface self-intersection offsets, axis-aligned slab misses,
// and "effectively zero" determinants/denominators.
const Epsilon = 1e-5

// Eq reports whether a and b are equal within Epsilon.
func Eq(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Clamp limits x to the closed interval [min, max].
func Clamp(min, max, x float64) float64 {
	return math.Min(math.Max(x, min), max)
}

// Clamp01 limits x to [0, 1].
func Clamp01(x float64) float64 {
	return Clamp(0, 1, x)
}

// Mod is the mathematical modulus: unlike math.Mod, the result is always
// non-negative for a positive divisor, e.g. Mod(-0.25, 1) == 0.75.
func Mod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += math.Abs(b)
	}
	return m
}

// FastFloor truncates x towards negative infinity.
func FastFloor(x float64) int {
	i := int(x)
	if x < float64(i) {
		i--
	}
	return i
}

// QuadraticRoots solves a*t^2 + b*t + c == 0 for real roots. ok is false when
// the discriminant is negative (no real roots) or a is ~0 (degenerate,
// callers should fall back to the linear case themselves). When there is
// exactly one root, t1 == t2.
func QuadraticRoots(a, b, c float64) (t1, t2 float64, ok bool) {
	if Eq(a, 0) {
		return 0, 0, false
	}
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(discriminant)
	t1 = (-b - sq) / (2 * a)
	t2 = (-b + sq) / (2 * a)
	return t1, t2, true
}
