package shape

import "github.com/brindlefield/raytracer/internal/prim"

// CSGOp is a constructive-solid-geometry combination rule: given whether
// an intersection came from the left or right operand shape, and whether
// the ray is currently inside each operand, it decides whether that
// intersection survives the combination. Grounded on original_source's
// csg_operation/csg_union/csg_intersection/csg_difference.
type CSGOp interface {
	Allowed(leftHit, insideLeft, insideRight bool) bool
}

type unionOp struct{}

func (unionOp) Allowed(leftHit, insideLeft, insideRight bool) bool {
	return (leftHit && !insideRight) || (!leftHit && !insideLeft)
}

type intersectionOp struct{}

func (intersectionOp) Allowed(leftHit, insideLeft, insideRight bool) bool {
	return (leftHit && insideRight) || (!leftHit && insideLeft)
}

type differenceOp struct{}

func (differenceOp) Allowed(leftHit, insideLeft, insideRight bool) bool {
	return (leftHit && !insideRight) || (!leftHit && insideLeft)
}

// Union, Intersection, and Difference are the three CSG combination rules
// a CSG node can be built with.
var (
	Union        CSGOp = unionOp{}
	Intersection CSGOp = intersectionOp{}
	Difference   CSGOp = differenceOp{}
)

// CSG combines two shapes (each of which may itself be a Group or another
// CSG node) under one of the three set-operation rules above, grounded on
// original_source's csg_shape.
type CSG struct {
	Base
	Op          CSGOp
	Left, Right Shape
}

// NewCSG builds a CSG node and adopts left/right as its children.
func NewCSG(op CSGOp, left, right Shape) *CSG {
	c := &CSG{Base: NewBase(), Op: op, Left: left, Right: right}
	SetParent(left, c)
	SetParent(right, c)
	return c
}

// LocalIntersect receives r already in the CSG node's own local space, so
// (mirroring Group.LocalIntersect) left/right only need their own
// inv_transform applied.
func (c *CSG) LocalIntersect(r Ray) Intersections {
	leftXs := c.Left.LocalIntersect(r.Transform(c.Left.InvTransform()))
	rightXs := c.Right.LocalIntersect(r.Transform(c.Right.InvTransform()))

	all := Merge(leftXs, rightXs).Sort()
	return c.filterIntersections(all)
}

// filterIntersections walks the sorted intersection list left to right,
// tracking whether the ray currently sits inside the left and right
// operands, and keeps only the intersections the CSG operation allows.
func (c *CSG) filterIntersections(xs Intersections) Intersections {
	var insideLeft, insideRight bool
	var result Intersections

	for _, x := range xs {
		leftHit := c.Left.Includes(x.Shape) || c.Left == x.Shape

		if c.Op.Allowed(leftHit, insideLeft, insideRight) {
			result = append(result, x)
		}

		if leftHit {
			insideLeft = !insideLeft
		} else {
			insideRight = !insideRight
		}
	}
	return result
}

func (c *CSG) LocalNormalAt(prim.Tuple, Intersection) prim.Tuple {
	panic("shape: csg shape has no normal of its own")
}

// Includes reports whether other is this CSG node's left or right operand
// or reachable among either operand's own descendants.
func (c *CSG) Includes(other Shape) bool {
	return c.Left == other || c.Right == other || c.Left.Includes(other) || c.Right.Includes(other)
}
