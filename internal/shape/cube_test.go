package shape

import (
	"testing"

	"github.com/brindlefield/raytracer/internal/prim"
)

func TestCubeIntersectRayHitsEachFace(t *testing.T) {
	tests := []struct {
		name           string
		origin, dir    prim.Tuple
		t1, t2         float64
	}{
		{"+x", prim.Point(5, 0.5, 0), prim.Vector(-1, 0, 0), 4, 6},
		{"-x", prim.Point(-5, 0.5, 0), prim.Vector(1, 0, 0), 4, 6},
		{"+y", prim.Point(0.5, 5, 0), prim.Vector(0, -1, 0), 4, 6},
		{"-y", prim.Point(0.5, -5, 0), prim.Vector(0, 1, 0), 4, 6},
		{"+z", prim.Point(0.5, 0, 5), prim.Vector(0, 0, -1), 4, 6},
		{"-z", prim.Point(0.5, 0, -5), prim.Vector(0, 0, 1), 4, 6},
		{"inside", prim.Point(0, 0.5, 0), prim.Vector(0, 0, 1), -1, 1},
	}
	c := NewCube()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := prim.NewRay(tt.origin, tt.dir)
			xs := c.LocalIntersect(r)
			if len(xs) != 2 || xs[0].T != tt.t1 || xs[1].T != tt.t2 {
				t.Errorf("got %v, want [%v %v]", xs, tt.t1, tt.t2)
			}
		})
	}
}

func TestCubeIntersectRayMisses(t *testing.T) {
	c := NewCube()
	tests := []struct {
		origin, dir prim.Tuple
	}{
		{prim.Point(-2, 0, 0), prim.Vector(0.2673, 0.5345, 0.8018)},
		{prim.Point(0, -2, 0), prim.Vector(0.8018, 0.2673, 0.5345)},
		{prim.Point(0, 0, -2), prim.Vector(0.5345, 0.8018, 0.2673)},
		{prim.Point(2, 0, 2), prim.Vector(0, 0, -1)},
		{prim.Point(0, 2, 2), prim.Vector(0, -1, 0)},
		{prim.Point(2, 2, 0), prim.Vector(-1, 0, 0)},
	}
	for _, tt := range tests {
		r := prim.NewRay(tt.origin, tt.dir)
		if xs := c.LocalIntersect(r); xs != nil {
			t.Errorf("ray from %v dir %v: got %v, want no intersections", tt.origin, tt.dir, xs)
		}
	}
}

func TestCubeNormalAt(t *testing.T) {
	c := NewCube()
	tests := []struct {
		point prim.Tuple
		want  prim.Tuple
	}{
		{prim.Point(1, 0.5, -0.8), prim.Vector(1, 0, 0)},
		{prim.Point(-1, -0.2, 0.9), prim.Vector(-1, 0, 0)},
		{prim.Point(-0.4, 1, -0.1), prim.Vector(0, 1, 0)},
		{prim.Point(0.3, -1, -0.7), prim.Vector(0, -1, 0)},
		{prim.Point(-0.6, 0.3, 1), prim.Vector(0, 0, 1)},
		{prim.Point(0.4, 0.4, -1), prim.Vector(0, 0, -1)},
		{prim.Point(1, 1, 1), prim.Vector(1, 0, 0)},
		{prim.Point(-1, -1, -1), prim.Vector(-1, 0, 0)},
	}
	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point, Intersection{}); !got.Equal(tt.want) {
			t.Errorf("LocalNormalAt(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}
