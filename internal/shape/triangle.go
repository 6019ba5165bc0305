package shape

import "github.com/brindlefield/raytracer/internal/prim"

// Triangle is a flat triangle defined by three vertices, with edge
// vectors precomputed at construction time, grounded on
// original_source's triangle.
type Triangle struct {
	Base
	P1, P2, P3 prim.Tuple
	E1, E2     prim.Tuple
	Normal     prim.Tuple
}

// NewTriangle builds a flat triangle; its constant normal is the
// normalized cross product of its two edge vectors.
func NewTriangle(p1, p2, p3 prim.Tuple) *Triangle {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	return &Triangle{
		Base:   NewBase(),
		P1:     p1, P2: p2, P3: p3,
		E1: e1, E2: e2,
		Normal: e2.Cross(e1).Normalize(),
	}
}

// LocalIntersect implements the Möller-Trumbore ray-triangle intersection
// algorithm.
func (tr *Triangle) LocalIntersect(r Ray) Intersections {
	dirCrossE2 := r.Direction.Cross(tr.E2)
	det := tr.E1.Dot(dirCrossE2)
	if prim.Eq(det, 0) {
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := r.Origin.Sub(tr.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(tr.E1)
	v := f * r.Direction.Dot(originCrossE1)
	if v < 0 || (u+v) > 1 {
		return nil
	}

	t := f * tr.E2.Dot(originCrossE1)
	return Intersections{{T: t, Shape: tr, U: u, V: v}}
}

func (tr *Triangle) LocalNormalAt(prim.Tuple, Intersection) prim.Tuple {
	return tr.Normal
}

// SmoothTriangle is a Triangle whose normal is interpolated across its
// surface from three per-vertex normals using the hit's barycentric
// coordinates, grounded on original_source's triangle (the two-normals
// overload) generalized into its own type for clarity in Go.
type SmoothTriangle struct {
	Triangle
	N1, N2, N3 prim.Tuple
}

// NewSmoothTriangle builds a triangle with per-vertex normals.
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 prim.Tuple) *SmoothTriangle {
	return &SmoothTriangle{
		Triangle: *NewTriangle(p1, p2, p3),
		N1:       n1, N2: n2, N3: n3,
	}
}

func (tr *SmoothTriangle) LocalIntersect(r Ray) Intersections {
	xs := tr.Triangle.LocalIntersect(r)
	for i := range xs {
		xs[i].Shape = tr
	}
	return xs
}

func (tr *SmoothTriangle) LocalNormalAt(_ prim.Tuple, hit Intersection) prim.Tuple {
	return tr.N2.Scale(hit.U).
		Add(tr.N3.Scale(hit.V)).
		Add(tr.N1.Scale(1 - hit.U - hit.V))
}
