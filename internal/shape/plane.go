package shape

import "github.com/brindlefield/raytracer/internal/prim"

// Plane is the infinite xz-plane (y == 0 in local space), grounded on
// original_source's plane.
type Plane struct {
	Base
}

// NewPlane returns a plane with the default material and identity
// transform.
func NewPlane() *Plane {
	return &Plane{Base: NewBase()}
}

func (p *Plane) LocalIntersect(r Ray) Intersections {
	if prim.Eq(r.Direction.Y, 0) {
		return nil
	}
	t := -r.Origin.Y / r.Direction.Y
	return Intersections{{T: t, Shape: p}}
}

func (p *Plane) LocalNormalAt(prim.Tuple, Intersection) prim.Tuple {
	return prim.Vector(0, 1, 0)
}
