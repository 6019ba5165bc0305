package shape

import "github.com/brindlefield/raytracer/internal/prim"

// Sphere is a unit sphere (radius 1) centered at the local-space origin,
// grounded on original_source's sphere — generalized from the C++
// version's configurable radius to a fixed unit sphere since every
// concrete scene scales it via its transform instead (spec §4.1).
type Sphere struct {
	Base
}

// NewSphere returns a unit sphere with the default material and identity
// transform.
func NewSphere() *Sphere {
	return &Sphere{Base: NewBase()}
}

// NewGlassSphere returns a unit sphere preconfigured with a
// highly-transparent, highly-reflective glass material, a convenience
// constructor original_source's stock_materials and several of its
// render_* examples reach for when building refraction test scenes.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	m := s.Material()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	m.Reflective = 1.0
	s.SetMaterial(m)
	return s
}

func (s *Sphere) LocalIntersect(r Ray) Intersections {
	sphereToRay := r.Origin.Sub(prim.Origin)
	a := r.Direction.Dot(r.Direction)
	b := 2.0 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	t1, t2, ok := prim.QuadraticRoots(a, b, c)
	if !ok {
		return nil
	}
	return Intersections{{T: t1, Shape: s}, {T: t2, Shape: s}}
}

func (s *Sphere) LocalNormalAt(localPoint prim.Tuple, _ Intersection) prim.Tuple {
	return localPoint.Sub(prim.Origin)
}
