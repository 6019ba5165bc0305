package prim

import "fmt"

// Ray is a parametric line: P(t) = Origin + t*Direction.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay constructs a ray. origin must be a point and direction a vector;
// callers are trusted to pass the right kinds (the shape and camera code
// that builds rays always does).
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

func (r Ray) String() string {
	return fmt.Sprintf("ray(origin=%v, direction=%v)", r.Origin, r.Direction)
}

// Position evaluates the ray at parameter t.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform returns a new ray with both the origin and direction carried
// through m (direction transforms without translation contaminating it,
// since its w component is 0).
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
