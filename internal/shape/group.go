package shape

import "github.com/brindlefield/raytracer/internal/prim"

// Group is a container shape with no surface of its own, taking its form
// purely from its children, grounded on original_source's group.
type Group struct {
	Base
	children []Shape
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{Base: NewBase()}
}

// AddChild appends child to the group and adopts it, setting the group as
// the child's parent so world/object-space conversions walk through the
// group's own transform.
func (g *Group) AddChild(child Shape) {
	g.children = append(g.children, child)
	SetParent(child, g)
}

// Children returns the group's child shapes in insertion order.
func (g *Group) Children() []Shape { return g.children }

// IsEmpty reports whether the group has no children.
func (g *Group) IsEmpty() bool { return len(g.children) == 0 }

// LocalIntersect receives r already expressed in the group's own local
// space, so each child only needs its own inv_transform applied (not the
// whole ancestor chain WorldToObject/Intersect would otherwise re-walk,
// double-applying the group's transform).
func (g *Group) LocalIntersect(r Ray) Intersections {
	var xs Intersections
	for _, child := range g.children {
		childLocal := r.Transform(child.InvTransform())
		xs = Merge(xs, child.LocalIntersect(childLocal))
	}
	return xs.Sort()
}

// LocalNormalAt is never called on a group: a group has no surface of its
// own, so NormalAt is always dispatched to the child shape an
// intersection actually reports.
func (g *Group) LocalNormalAt(prim.Tuple, Intersection) prim.Tuple {
	panic("shape: group has no normal of its own")
}

// Includes reports whether other is reachable among g's descendants
// (recursively through any nested groups or CSG shapes).
func (g *Group) Includes(other Shape) bool {
	for _, child := range g.children {
		if child == other || child.Includes(other) {
			return true
		}
	}
	return false
}
