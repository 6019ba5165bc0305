package prim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRayPosition(t *testing.T) {
	r := NewRay(Point(2, 3, 4), Vector(1, 0, 0))
	tests := []struct {
		t    float64
		want Tuple
	}{
		{0, Point(2, 3, 4)},
		{1, Point(3, 3, 4)},
		{-1, Point(1, 3, 4)},
		{2.5, Point(4.5, 3, 4)},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(r.Position(tt.t), tt.want, approxOpts); diff != "" {
			t.Errorf("Position(%v) mismatch (-got +want):\n%s", tt.t, diff)
		}
	}
}

func TestRayTransformTranslate(t *testing.T) {
	r := NewRay(Point(1, 2, 3), Vector(0, 1, 0))
	m := Translation(3, 4, 5)
	got := r.Transform(m)
	if diff := cmp.Diff(got.Origin, Point(4, 6, 8), approxOpts); diff != "" {
		t.Errorf("origin mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(got.Direction, Vector(0, 1, 0), approxOpts); diff != "" {
		t.Errorf("direction mismatch (-got +want):\n%s", diff)
	}
}

func TestRayTransformScale(t *testing.T) {
	r := NewRay(Point(1, 2, 3), Vector(0, 1, 0))
	m := Scaling(2, 3, 4)
	got := r.Transform(m)
	if diff := cmp.Diff(got.Origin, Point(2, 6, 12), approxOpts); diff != "" {
		t.Errorf("origin mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(got.Direction, Vector(0, 3, 0), approxOpts); diff != "" {
		t.Errorf("direction mismatch (-got +want):\n%s", diff)
	}
}
