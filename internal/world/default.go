package world

import (
	"github.com/brindlefield/raytracer/internal/material"
	"github.com/brindlefield/raytracer/internal/prim"
	"github.com/brindlefield/raytracer/internal/shading"
	"github.com/brindlefield/raytracer/internal/shape"
)

// Default builds the world used throughout the shading test scenarios
// and example scenes: a single light plus two concentric spheres,
// grounded on original_source's world::create_default_world.
func Default() *World {
	w := New()
	w.AddLight(shading.NewPointLight(prim.Point(-10, 10, -10), prim.White))

	s1 := shape.NewSphere()
	s1.SetMaterial(material.New(
		material.WithColor(prim.RGB(0.8, 1.0, 0.6)),
		material.WithDiffuse(0.7),
		material.WithSpecular(0.2),
	))
	w.AddShape(s1)

	s2 := shape.NewSphere()
	s2.SetTransform(prim.Scaling(0.5, 0.5, 0.5))
	w.AddShape(s2)

	return w
}
