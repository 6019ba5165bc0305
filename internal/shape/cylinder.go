package shape

import (
	"math"

	"github.com/brindlefield/raytracer/internal/prim"
)

// Cylinder is a unit-radius cylinder extending along the y-axis, bounded
// between MinY (exclusive) and MaxY (exclusive) and optionally capped at
// each end, grounded on original_source's cylinder. NewCylinder returns an
// infinite, uncapped cylinder (MinY -Inf, MaxY +Inf).
type Cylinder struct {
	Base
	MinY, MaxY float64
	Capped     bool
}

// NewCylinder returns an infinite, uncapped unit cylinder.
func NewCylinder() *Cylinder {
	return &Cylinder{
		Base: NewBase(),
		MinY: math.Inf(-1),
		MaxY: math.Inf(1),
	}
}

// NewTruncatedCylinder returns a cylinder bounded to (minY, maxY),
// optionally capped at both ends.
func NewTruncatedCylinder(minY, maxY float64, capped bool) *Cylinder {
	return &Cylinder{Base: NewBase(), MinY: minY, MaxY: maxY, Capped: capped}
}

func (c *Cylinder) LocalIntersect(r Ray) Intersections {
	var xs Intersections

	a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z
	if !prim.Eq(a, 0) {
		b := 2*r.Origin.X*r.Direction.X + 2*r.Origin.Z*r.Direction.Z
		cc := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1

		t0, t1, ok := prim.QuadraticRoots(a, b, cc)
		if ok {
			if t0 > t1 {
				t0, t1 = t1, t0
			}
			if y := r.Origin.Y + t0*r.Direction.Y; c.MinY < y && y < c.MaxY {
				xs = append(xs, Intersection{T: t0, Shape: c})
			}
			if y := r.Origin.Y + t1*r.Direction.Y; c.MinY < y && y < c.MaxY {
				xs = append(xs, Intersection{T: t1, Shape: c})
			}
		}
	}

	return c.intersectCaps(r, xs)
}

func (c *Cylinder) intersectCaps(r Ray, xs Intersections) Intersections {
	if !c.Capped || prim.Eq(r.Direction.Y, 0) {
		return xs
	}

	t := (c.MinY - r.Origin.Y) / r.Direction.Y
	if cylinderCapHit(r, t) {
		xs = append(xs, Intersection{T: t, Shape: c})
	}

	t = (c.MaxY - r.Origin.Y) / r.Direction.Y
	if cylinderCapHit(r, t) {
		xs = append(xs, Intersection{T: t, Shape: c})
	}
	return xs
}

// cylinderCapHit reports whether the ray, at parameter t, lies within the
// unit-radius disk forming an end cap.
func cylinderCapHit(r Ray, t float64) bool {
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	return (x*x + z*z) <= 1
}

func (c *Cylinder) LocalNormalAt(p prim.Tuple, _ Intersection) prim.Tuple {
	dist := p.X*p.X + p.Z*p.Z

	if c.Capped && dist < 1 && p.Y >= c.MaxY-prim.Epsilon {
		return prim.Vector(0, 1, 0)
	}
	if c.Capped && dist < 1 && p.Y <= c.MinY+prim.Epsilon {
		return prim.Vector(0, -1, 0)
	}
	return prim.Vector(p.X, 0, p.Z)
}
