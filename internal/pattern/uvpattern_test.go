package pattern

import (
	"testing"

	"github.com/brindlefield/raytracer/internal/canvas"
	"github.com/brindlefield/raytracer/internal/prim"
)

func TestUVCheckersTiles(t *testing.T) {
	p := NewUVCheckers(2, prim.Black, 2, prim.White)
	tests := []struct {
		u, v float64
		want prim.Color
	}{
		{0.0, 0.0, prim.Black},
		{0.5, 0.0, prim.White},
		{0.0, 0.5, prim.White},
		{0.5, 0.5, prim.Black},
		{1.0, 1.0, prim.Black},
	}
	for _, tt := range tests {
		got := p.UVColorAt(UVPoint{U: tt.u, V: tt.v})
		checkColor(t, got, tt.want)
	}
}

func TestUVAlignCheckIdentifiesCorners(t *testing.T) {
	main, ul, ur, bl, br := prim.White, prim.Red, prim.Green, prim.Blue, prim.RGB(1, 1, 0)
	p := NewUVAlignCheck(main, ul, ur, bl, br)

	tests := []struct {
		name string
		uv   UVPoint
		want prim.Color
	}{
		{"main", UVPoint{0.5, 0.5}, main},
		{"upper-left", UVPoint{0.1, 0.9}, ul},
		{"upper-right", UVPoint{0.9, 0.9}, ur},
		{"bottom-left", UVPoint{0.1, 0.1}, bl},
		{"bottom-right", UVPoint{0.9, 0.1}, br},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkColor(t, p.UVColorAt(tt.uv), tt.want)
		})
	}
}

func TestSphericalMapAtKeyPoints(t *testing.T) {
	tests := []struct {
		name  string
		point prim.Tuple
		want  UVPoint
	}{
		{"origin of x axis", prim.Point(0, 0, -1), UVPoint{0.0, 0.5}},
		{"positive x", prim.Point(1, 0, 0), UVPoint{0.25, 0.5}},
		{"positive z", prim.Point(0, 0, 1), UVPoint{0.5, 0.5}},
		{"negative x", prim.Point(-1, 0, 0), UVPoint{0.75, 0.5}},
		{"north pole", prim.Point(0, 1, 0), UVPoint{0.5, 1.0}},
		{"south pole", prim.Point(0, -1, 0), UVPoint{0.5, 0.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SphericalMap(tt.point)
			if !prim.Eq(got.U, tt.want.U) || !prim.Eq(got.V, tt.want.V) {
				t.Errorf("SphericalMap(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestUVImageSamplesFlippedV(t *testing.T) {
	// A 2x2 canvas: top row red/green, bottom row blue/white.
	cv := canvas.New(2, 2)
	cv.Set(0, 0, prim.Red)
	cv.Set(1, 0, prim.Green)
	cv.Set(0, 1, prim.Blue)
	cv.Set(1, 1, prim.White)

	p := NewUVImage(cv)
	tests := []struct {
		name string
		uv   UVPoint
		want prim.Color
	}{
		{"u=0,v=1 is top-left", UVPoint{0, 1}, prim.Red},
		{"u=1,v=1 is top-right", UVPoint{1, 1}, prim.Green},
		{"u=0,v=0 is bottom-left", UVPoint{0, 0}, prim.Blue},
		{"u=1,v=0 is bottom-right", UVPoint{1, 0}, prim.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkColor(t, p.UVColorAt(tt.uv), tt.want)
		})
	}
}

func TestPlanarMapWrapsBothAxes(t *testing.T) {
	tests := []struct {
		point prim.Tuple
		want  UVPoint
	}{
		{prim.Point(0.25, 0, 0.5), UVPoint{0.25, 0.5}},
		{prim.Point(0.25, 0, -0.25), UVPoint{0.25, 0.75}},
		{prim.Point(0.25, 0, -1.75), UVPoint{0.25, 0.25}},
	}
	for _, tt := range tests {
		got := PlanarMap(tt.point)
		if !prim.Eq(got.U, tt.want.U) || !prim.Eq(got.V, tt.want.V) {
			t.Errorf("PlanarMap(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}
