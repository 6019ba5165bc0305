// Package world ties shapes, lights, and the shading model together into
// the renderable scene container: intersecting a ray against every shape,
// shading the visible hit, and recursively following reflection and
// refraction rays up to a bounded recursion depth. Grounded on
// original_source's world.
package world

import (
	"math"

	"github.com/brindlefield/raytracer/internal/prim"
	"github.com/brindlefield/raytracer/internal/shading"
	"github.com/brindlefield/raytracer/internal/shape"
)

// MaxRecursionDepth bounds how many times ColorAt will follow a
// reflection or refraction ray before giving up and returning black,
// preventing infinite bouncing between facing mirrors — matches
// original_source's world::MAX_RECURSION_DEPTH.
const MaxRecursionDepth = 5

// World is the container of every light and shape in a scene.
type World struct {
	Lights []shading.PointLight
	Shapes []shape.Shape
}

// New returns an empty world.
func New() *World {
	return &World{}
}

// AddLight appends a light to the world.
func (w *World) AddLight(l shading.PointLight) { w.Lights = append(w.Lights, l) }

// AddShape appends a top-level shape to the world.
func (w *World) AddShape(s shape.Shape) { w.Shapes = append(w.Shapes, s) }

// Intersect returns every intersection of r against every shape in the
// world, sorted ascending by T.
func (w *World) Intersect(r prim.Ray) shape.Intersections {
	var xs shape.Intersections
	for _, s := range w.Shapes {
		xs = shape.Merge(xs, shape.Intersect(s, r))
	}
	return xs.Sort()
}

// ColorAt computes the color a ray sees: the visible intersection's
// shaded color, plus any reflected/refracted contribution, recursing up
// to remaining bounces. It returns black when the ray hits nothing.
func (w *World) ColorAt(r prim.Ray, remaining int) prim.Color {
	xs := w.Intersect(r)
	hit, ok := xs.Hit()
	if !ok {
		return prim.Black
	}

	info := shading.Prepare(hit, r, xs)
	return w.ShadeHit(info, remaining)
}

// ShadeHit computes the full shaded color at a prepared hit: direct
// illumination from every light, plus reflection and refraction,
// combined via the Schlick approximation when a surface is both
// reflective and transparent.
func (w *World) ShadeHit(info shading.HitInfo, remaining int) prim.Color {
	mat := info.Shape.Material()

	surface := prim.Black
	for _, light := range w.Lights {
		surface = surface.Add(shading.Lighting(mat, info.Shape, light, info.OverPoint, info.Eye, info.Normal, w.isShadowedFrom(info.OverPoint, light)))
	}

	reflected := w.ReflectedColor(info, remaining)
	refracted := w.RefractedColor(info, remaining)

	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := shading.Schlick(info)
		return surface.Add(reflected.Scale(reflectance)).Add(refracted.Scale(1 - reflectance))
	}

	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor follows the reflection ray from info's over-point, up to
// remaining bounces, returning black for a non-reflective material or
// once recursion bottoms out.
func (w *World) ReflectedColor(info shading.HitInfo, remaining int) prim.Color {
	mat := info.Shape.Material()
	if remaining <= 0 || prim.Eq(mat.Reflective, 0) {
		return prim.Black
	}

	reflectRay := prim.NewRay(info.OverPoint, info.Reflect)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Scale(mat.Reflective)
}

// RefractedColor follows the refraction ray through info's under-point,
// up to remaining bounces, returning black for an opaque material, once
// recursion bottoms out, or under total internal reflection.
func (w *World) RefractedColor(info shading.HitInfo, remaining int) prim.Color {
	mat := info.Shape.Material()
	if remaining <= 0 || prim.Eq(mat.Transparency, 0) {
		return prim.Black
	}

	nRatio := info.N1 / info.N2
	cosI := info.Eye.Dot(info.Normal)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return prim.Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := info.Normal.Scale(nRatio*cosI - cosT).Sub(info.Eye.Scale(nRatio))

	refractRay := prim.NewRay(info.UnderPoint, direction)
	color := w.ColorAt(refractRay, remaining-1)
	return color.Scale(mat.Transparency)
}

// IsShadowed reports whether point sits in shadow with respect to light.
func (w *World) IsShadowed(point prim.Tuple, light shading.PointLight) bool {
	return w.isShadowedFrom(point, light)
}

// isShadowedFrom probes every shape between point and light, not just the
// nearest one: a non-shadow-casting object sitting in front of a
// shadow-casting one must not admit light past it. xs is already sorted
// ascending by T (World.Intersect sorts), so this doubles as spec §4.1's
// has_intersection_before early-out — it stops at the first T that either
// qualifies or has already passed the light, instead of scanning every
// intersection in the world.
func (w *World) isShadowedFrom(point prim.Tuple, light shading.PointLight) bool {
	toLight := light.Position.Sub(point)
	distance := toLight.Magnitude()
	direction := toLight.Normalize()

	r := prim.NewRay(point, direction)
	xs := w.Intersect(r)

	for _, x := range xs {
		if x.T <= 0 {
			continue
		}
		if x.T >= distance {
			break
		}
		if x.Shape.CastsShadow() {
			return true
		}
	}
	return false
}
