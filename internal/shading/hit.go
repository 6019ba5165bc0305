// Package shading implements the light-transport math that sits above
// shape intersection: precomputing per-hit vectors (eye, normal, reflect,
// over/under points, the n1/n2 refractive-index stack) and the Phong
// illumination model those vectors feed into. Grounded on
// original_source's intersection_info_t and phong_illumination.
package shading

import (
	"math"

	"github.com/brindlefield/raytracer/internal/prim"
	"github.com/brindlefield/raytracer/internal/shape"
)

// HitInfo bundles everything the shading stage needs about a single
// visible intersection, computed once up front by Prepare.
type HitInfo struct {
	T      float64
	Shape  shape.Shape
	Inside bool

	Point      prim.Tuple // exact surface point
	OverPoint  prim.Tuple // surface point nudged along the normal, used to
	// cast shadow/reflection/refraction rays without immediately
	// re-intersecting the originating surface.
	UnderPoint prim.Tuple // nudged in the opposite direction, used for
	// refraction rays entering the surface.

	Eye     prim.Tuple
	Normal  prim.Tuple
	Reflect prim.Tuple

	N1, N2 float64 // refractive indices of the media either side of the hit
}

// Prepare computes a HitInfo for hit, given the full sorted intersection
// list xs it came from (needed to walk the n1/n2 refractive-index
// container stack) and the ray that produced them.
func Prepare(hit shape.Intersection, r prim.Ray, xs shape.Intersections) HitInfo {
	info := HitInfo{
		T:     hit.T,
		Shape: hit.Shape,
		Point: r.Position(hit.T),
		Eye:   r.Direction.Neg(),
	}

	info.Normal = shape.NormalAt(hit.Shape, info.Point, hit)
	if info.Normal.Dot(info.Eye) < 0 {
		info.Inside = true
		info.Normal = info.Normal.Neg()
	}

	info.Reflect = r.Direction.Reflect(info.Normal)

	offset := info.Normal.Scale(prim.Epsilon)
	info.OverPoint = info.Point.Add(offset)
	info.UnderPoint = info.Point.Sub(offset)

	info.N1, info.N2 = refractiveIndices(hit, xs)

	return info
}

// refractiveIndices walks xs looking for hit, tracking the stack of
// currently-entered shapes' refractive indices to determine n1 (the
// medium the ray is leaving) and n2 (the medium it is entering),
// grounded on the "Ray Tracer Challenge" book's reference algorithm
// for refraction through nested/adjacent transparent shapes.
func refractiveIndices(hit shape.Intersection, xs shape.Intersections) (n1, n2 float64) {
	var containers []shape.Shape

	isHit := func(x shape.Intersection) bool {
		return x.T == hit.T && x.Shape == hit.Shape
	}

	for _, x := range xs {
		if isHit(x) {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOf(containers, x.Shape); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Shape)
		}

		if isHit(x) {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}

	return n1, n2
}

func indexOf(xs []shape.Shape, s shape.Shape) int {
	for i, x := range xs {
		if x == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at a hit: the fraction of
// light reflected rather than refracted, grounded on
// intersection_info_t::schlick_approx.
func Schlick(info HitInfo) float64 {
	cos := info.Eye.Dot(info.Normal)

	if info.N1 > info.N2 {
		n := info.N1 / info.N2
		sin2t := n * n * (1.0 - cos*cos)
		if sin2t > 1.0 {
			return 1.0
		}
		cosT := math.Sqrt(1.0 - sin2t)
		cos = cosT
	}

	r0 := (info.N1 - info.N2) / (info.N1 + info.N2)
	r0 *= r0
	return r0 + (1-r0)*pow5(1-cos)
}

func pow5(x float64) float64 { return x * x * x * x * x }
