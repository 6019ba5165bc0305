package shading

import (
	"testing"

	"github.com/brindlefield/raytracer/internal/prim"
	"github.com/brindlefield/raytracer/internal/shape"
)

func TestPrepareOutsideHit(t *testing.T) {
	r := prim.NewRay(prim.Point(0, 0, -5), prim.Vector(0, 0, 1))
	s := shape.NewSphere()
	hit := shape.Intersection{T: 4, Shape: s}

	info := Prepare(hit, r, shape.Intersections{hit})
	if info.Inside {
		t.Errorf("expected outside hit")
	}
	if !info.Point.Equal(prim.Point(0, 0, -1)) {
		t.Errorf("point = %v", info.Point)
	}
	if !info.Eye.Equal(prim.Vector(0, 0, -1)) {
		t.Errorf("eye = %v", info.Eye)
	}
	if !info.Normal.Equal(prim.Vector(0, 0, -1)) {
		t.Errorf("normal = %v", info.Normal)
	}
}

func TestPrepareInsideHit(t *testing.T) {
	r := prim.NewRay(prim.Origin, prim.Vector(0, 0, 1))
	s := shape.NewSphere()
	hit := shape.Intersection{T: 1, Shape: s}

	info := Prepare(hit, r, shape.Intersections{hit})
	if !info.Inside {
		t.Errorf("expected inside hit")
	}
	if !info.Point.Equal(prim.Point(0, 0, 1)) {
		t.Errorf("point = %v", info.Point)
	}
	if !info.Eye.Equal(prim.Vector(0, 0, -1)) {
		t.Errorf("eye = %v", info.Eye)
	}
	// the normal is inverted since we're inside the sphere
	if !info.Normal.Equal(prim.Vector(0, 0, -1)) {
		t.Errorf("normal = %v", info.Normal)
	}
}

func TestPrepareOverPointOffsetsTowardsCamera(t *testing.T) {
	r := prim.NewRay(prim.Point(0, 0, -5), prim.Vector(0, 0, 1))
	s := shape.NewSphere()
	s.SetTransform(prim.Translation(0, 0, 1))
	hit := shape.Intersection{T: 5, Shape: s}

	info := Prepare(hit, r, shape.Intersections{hit})
	if info.OverPoint.Z >= -prim.Epsilon/2 {
		t.Errorf("over point Z = %v, want < %v", info.OverPoint.Z, -prim.Epsilon/2)
	}
	if info.Point.Z <= info.OverPoint.Z {
		t.Errorf("over point should be nudged above the surface point")
	}
}

func TestPrepareReflectVector(t *testing.T) {
	p := shape.NewPlane()
	sq2 := 0.70710678118
	r := prim.NewRay(prim.Point(0, 1, -1), prim.Vector(0, -sq2, sq2))
	hit := shape.Intersection{T: sq2 * 2, Shape: p}

	info := Prepare(hit, r, shape.Intersections{hit})
	want := prim.Vector(0, sq2, sq2)
	if !info.Reflect.Equal(want) {
		t.Errorf("reflect = %v, want %v", info.Reflect, want)
	}
}

func TestRefractiveIndicesAtEachTransition(t *testing.T) {
	a := shape.NewGlassSphere()
	a.SetTransform(prim.Scaling(2, 2, 2))
	am := a.Material()
	am.RefractiveIndex = 1.5
	a.SetMaterial(am)

	b := shape.NewGlassSphere()
	b.SetTransform(prim.Translation(0, 0, -0.25))
	bm := b.Material()
	bm.RefractiveIndex = 2.0
	b.SetMaterial(bm)

	c := shape.NewGlassSphere()
	c.SetTransform(prim.Translation(0, 0, 0.25))
	cm := c.Material()
	cm.RefractiveIndex = 2.5
	c.SetMaterial(cm)

	r := prim.NewRay(prim.Point(0, 0, -4), prim.Vector(0, 0, 1))
	xs := shape.Intersections{
		{T: 2, Shape: a}, {T: 2.75, Shape: b}, {T: 3.25, Shape: c},
		{T: 4.75, Shape: b}, {T: 5.25, Shape: c}, {T: 6, Shape: a},
	}

	wantN1 := []float64{1.0, 1.5, 2.0, 2.5, 2.5, 1.5}
	wantN2 := []float64{1.5, 2.0, 2.5, 2.5, 1.5, 1.0}

	for i, x := range xs {
		info := Prepare(x, r, xs)
		if !prim.Eq(info.N1, wantN1[i]) || !prim.Eq(info.N2, wantN2[i]) {
			t.Errorf("xs[%d]: n1=%v n2=%v, want n1=%v n2=%v", i, info.N1, info.N2, wantN1[i], wantN2[i])
		}
	}
}

func TestSchlickUnderTotalInternalReflection(t *testing.T) {
	s := shape.NewGlassSphere()
	sq2 := 0.70710678118
	r := prim.NewRay(prim.Point(0, 0, sq2), prim.Vector(0, 1, 0))
	xs := shape.Intersections{{T: -sq2, Shape: s}, {T: sq2, Shape: s}}

	info := Prepare(xs[1], r, xs)
	if got := Schlick(info); !prim.Eq(got, 1.0) {
		t.Errorf("Schlick = %v, want 1.0", got)
	}
}

func TestSchlickWithPerpendicularViewingAngle(t *testing.T) {
	s := shape.NewGlassSphere()
	r := prim.NewRay(prim.Origin, prim.Vector(0, 1, 0))
	xs := shape.Intersections{{T: -1, Shape: s}, {T: 1, Shape: s}}

	info := Prepare(xs[1], r, xs)
	if got := Schlick(info); !prim.Eq(got, 0.04) {
		t.Errorf("Schlick = %v, want ~0.04", got)
	}
}
