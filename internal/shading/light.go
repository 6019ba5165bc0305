package shading

import "github.com/brindlefield/raytracer/internal/prim"

// PointLight is a light source with no size, existing at a single point
// in space, grounded on original_source's point_light.
type PointLight struct {
	Position prim.Tuple
	Color    prim.Color
}

// NewPointLight builds a point light at position with the given color.
func NewPointLight(position prim.Tuple, color prim.Color) PointLight {
	return PointLight{Position: position, Color: color}
}
