package shape

import (
	"math"

	"github.com/brindlefield/raytracer/internal/prim"
)

// Cube is an axis-aligned cube with each side 2 units, centered at the
// local-space origin so its extremities sit at (-1,-1,-1) and (1,1,1),
// grounded on original_source's cube.
type Cube struct {
	Base
}

// NewCube returns a cube with the default material and identity transform.
func NewCube() *Cube {
	return &Cube{Base: NewBase()}
}

func (c *Cube) LocalIntersect(r Ray) Intersections {
	xtMin, xtMax := checkAxis(r.Origin.X, r.Direction.X)
	ytMin, ytMax := checkAxis(r.Origin.Y, r.Direction.Y)
	ztMin, ztMax := checkAxis(r.Origin.Z, r.Direction.Z)

	tMin := max3(xtMin, ytMin, ztMin)
	tMax := min3(xtMax, ytMax, ztMax)

	if tMin > tMax {
		return nil
	}
	return Intersections{{T: tMin, Shape: c}, {T: tMax, Shape: c}}
}

func checkAxis(origin, direction float64) (tMin, tMax float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	if math.Abs(direction) >= prim.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.MaxFloat64
		tMax = tMaxNumerator * math.MaxFloat64
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }

func (c *Cube) LocalNormalAt(p prim.Tuple, _ Intersection) prim.Tuple {
	absX, absY, absZ := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	maxc := max3(absX, absY, absZ)

	switch {
	case maxc == absX:
		return prim.Vector(p.X, 0, 0)
	case maxc == absY:
		return prim.Vector(0, p.Y, 0)
	default:
		return prim.Vector(0, 0, p.Z)
	}
}
