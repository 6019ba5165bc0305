package prim

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Tuple is a 4-component homogeneous coordinate: (x, y, z, w). By
// convention w == 1.0 marks a point and w == 0.0 marks a vector; every
// constructor below pins w to the correct value so the kind of a Tuple is
// never ambiguous once constructed.
type Tuple struct {
	X, Y, Z, W float64
}

// Point constructs a point (w = 1).
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1.0}
}

// Vector constructs a vector (w = 0).
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0.0}
}

// Origin is the point at (0, 0, 0).
var Origin = Point(0, 0, 0)

func (t Tuple) String() string {
	kind := "vector"
	if t.IsPoint() {
		kind = "point"
	}
	return fmt.Sprintf("%s(%.5f, %.5f, %.5f)", kind, t.X, t.Y, t.Z)
}

// IsPoint reports whether t is a point.
func (t Tuple) IsPoint() bool { return t.W != 0.0 }

// IsVector reports whether t is a vector.
func (t Tuple) IsVector() bool { return t.W == 0.0 }

// Equal compares two tuples within Epsilon on every component.
func (t Tuple) Equal(o Tuple) bool {
	return Eq(t.X, o.X) && Eq(t.Y, o.Y) && Eq(t.Z, o.Z) && Eq(t.W, o.W)
}

// Add implements point+vector, vector+vector, and (non-standard but
// harmless) point+point addition; callers are expected to only combine
// kinds that make geometric sense.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{t.X + o.X, t.Y + o.Y, t.Z + o.Z, t.W + o.W}
}

// Sub implements point-point = vector, point-vector = point, and
// vector-vector = vector, all via plain component subtraction.
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{t.X - o.X, t.Y - o.Y, t.Z - o.Z, t.W - o.W}
}

// Neg negates every component, including w.
func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Scale multiplies every component (including w) by s. Scaling a vector
// (w=0) keeps it a vector; scaling a point is only meaningful when s == 1,
// callers should not scale points directly.
func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Div divides every component by s.
func (t Tuple) Div(s float64) Tuple {
	return t.Scale(1.0 / s)
}

// Magnitude returns the Euclidean length of the x,y,z components.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Normalize returns a unit-length vector in the same direction as t.
// Normalizing a zero-length vector is a programmer error.
func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	if Eq(m, 0) {
		panic("prim: cannot normalize a zero-length vector")
	}
	return Tuple{t.X / m, t.Y / m, t.Z / m, t.W / m}
}

// Dot computes the 3-component dot product, ignoring w.
func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z
}

// Cross computes the 3-component cross product of two vectors, delegating
// the arithmetic to mathgl's mgl64.Vec3.Cross.
func (t Tuple) Cross(o Tuple) Tuple {
	a := mgl64.Vec3{t.X, t.Y, t.Z}
	b := mgl64.Vec3{o.X, o.Y, o.Z}
	c := a.Cross(b)
	return Vector(c[0], c[1], c[2])
}

// Reflect reflects vector t around the surface normal n:
// reflect(v, n) = v - 2*(v.n)*n.
func (t Tuple) Reflect(n Tuple) Tuple {
	return t.Sub(n.Scale(2 * t.Dot(n)))
}
