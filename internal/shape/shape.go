package shape

import (
	"github.com/brindlefield/raytracer/internal/material"
	"github.com/brindlefield/raytracer/internal/prim"
)

// Ray is the ray type shapes intersect against. It is a thin alias over
// prim.Ray so shape signatures read in domain terms.
type Ray = prim.Ray

// Shape is the interface every geometric primitive, group, and CSG node
// implements, grounded on original_source's shape_interface.
type Shape interface {
	// LocalIntersect computes intersections of a ray already transformed
	// into this shape's local (object) space.
	LocalIntersect(r Ray) Intersections

	// LocalNormalAt computes the surface normal, in local space, at a
	// local-space point — hit carries the barycentric coordinates for
	// shapes (smooth triangles) whose normal depends on which
	// intersection produced the point.
	LocalNormalAt(localPoint prim.Tuple, hit Intersection) prim.Tuple

	Transform() prim.Matrix
	InvTransform() prim.Matrix
	SetTransform(m prim.Matrix)

	Material() material.Material
	SetMaterial(m material.Material)

	CastsShadow() bool
	SetCastsShadow(b bool)

	Parent() Shape
	setParent(p Shape)

	// Includes reports whether other is reachable among this shape's
	// descendants (only a Group/CSG node has any); it does not report the
	// shape itself, so CSG filtering checks identity separately when
	// deciding which side of an operation produced a given intersection.
	Includes(other Shape) bool
}

// Base implements the bookkeeping every concrete shape needs: transform
// pair, material, shadow flag, and parent back-reference. Concrete shapes
// embed Base and only implement LocalIntersect/LocalNormalAt (and
// Includes, for composite shapes).
type Base struct {
	transform    prim.Matrix
	invTransform prim.Matrix
	mat          material.Material
	castsShadow  bool
	parent       Shape
}

// NewBase returns a Base with an identity transform and the spec's default
// material, as every freshly constructed shape starts out.
func NewBase() Base {
	return Base{
		transform:    prim.Identity4(),
		invTransform: prim.Identity4(),
		mat:          material.Default(),
		castsShadow:  true,
	}
}

func (b *Base) Transform() prim.Matrix    { return b.transform }
func (b *Base) InvTransform() prim.Matrix { return b.invTransform }

func (b *Base) SetTransform(m prim.Matrix) {
	b.transform = m
	b.invTransform = m.Inverse()
}

func (b *Base) Material() material.Material     { return b.mat }
func (b *Base) SetMaterial(m material.Material) { b.mat = m }

func (b *Base) CastsShadow() bool      { return b.castsShadow }
func (b *Base) SetCastsShadow(v bool)  { b.castsShadow = v }

func (b *Base) Parent() Shape       { return b.parent }
func (b *Base) setParent(p Shape)   { b.parent = p }

// Includes is the default for leaf shapes: a primitive has no descendants,
// so it includes nothing. Group and CSG override this to recurse into
// children.
func (b *Base) Includes(_ Shape) bool { return false }

// WorldToObject walks s's parent chain from the root down to s, applying
// each ancestor's inv_transform in turn, converting a world-space point
// into s's local space — grounded on original_source's shape_interface
// parent-chain traversal (spec §9's redesign flag: parent is a plain
// interface reference here rather than an arena index, since Go's GC
// makes the index indirection the book uses to avoid reference cycles
// unnecessary).
func WorldToObject(s Shape, point prim.Tuple) prim.Tuple {
	if parent := s.Parent(); parent != nil {
		point = WorldToObject(parent, point)
	}
	return s.InvTransform().MulTuple(point)
}

// NormalToWorld converts a local-space normal vector on s back into world
// space: apply the inverse-transpose of s's own transform, renormalize,
// then recurse up through the parent chain.
func NormalToWorld(s Shape, localNormal prim.Tuple) prim.Tuple {
	n := s.InvTransform().Transpose().MulTuple(localNormal)
	n.W = 0
	n = n.Normalize()
	if parent := s.Parent(); parent != nil {
		n = NormalToWorld(parent, n)
	}
	return n
}

// NormalAt computes the world-space normal at a world-space point on s:
// convert the point to s's local space, ask s for the local normal, then
// convert that normal back to world space.
func NormalAt(s Shape, worldPoint prim.Tuple, hit Intersection) prim.Tuple {
	localPoint := WorldToObject(s, worldPoint)
	localNormal := s.LocalNormalAt(localPoint, hit)
	return NormalToWorld(s, localNormal)
}

// Intersect transforms r into s's local space (by walking the full
// parent chain, not just s's own inverse, so nested groups compose their
// transforms correctly) and delegates to LocalIntersect.
func Intersect(s Shape, r Ray) Intersections {
	localRay := r.Transform(WorldToObjectTransform(s))
	return s.LocalIntersect(localRay)
}

// WorldToObjectTransform composes the inverse transforms from the root of
// s's parent chain down to s, equivalent to calling WorldToObject on every
// point of a ray at once. Exported so callers outside this package (e.g.
// shading.Lighting sampling a pattern) can convert a world point into s's
// local space without duplicating the parent-chain walk.
func WorldToObjectTransform(s Shape) prim.Matrix {
	if parent := s.Parent(); parent != nil {
		return s.InvTransform().Mul(WorldToObjectTransform(parent))
	}
	return s.InvTransform()
}

// SetParent records parent as child's parent; Group.AddChild and NewCSG
// call it to adopt a child shape. It is the exported way to reach the
// unexported setParent method.
func SetParent(child, parent Shape) {
	child.setParent(parent)
}
