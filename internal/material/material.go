// Package material implements the Phong material model: ambient, diffuse,
// specular, shininess, plus the reflective/transparent/refractive-index
// extensions used by the recursive shader, and a reference to the pattern
// that supplies the material's color at a surface point.
package material

import (
	"github.com/brindlefield/raytracer/internal/pattern"
	"github.com/brindlefield/raytracer/internal/prim"
)

// Named refractive indices, from spec §3.
const (
	RefractiveIndexVacuum  = 1.0
	RefractiveIndexAir     = 1.00029
	RefractiveIndexWater   = 1.333
	RefractiveIndexGlass   = 1.52
	RefractiveIndexDiamond = 2.417
)

// Material holds the Phong coefficients plus the extensions (reflective,
// transparency, refractive index) the recursive shader needs.
type Material struct {
	Pattern pattern.Pattern

	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64

	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Default returns the spec-mandated default material:
// {0.1, 0.9, 0.9, 200, 0.0, 1.0, 0.0, solid white}.
func Default() Material {
	return Material{
		Pattern:         pattern.NewSolid(prim.White),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: RefractiveIndexVacuum,
	}
}

// Option overrides one field of a Material built from Default(), replacing
// the teacher's fluent `material().set_x(...)` mutation chains (spec §9)
// with an immutable-configuration-by-functional-option pattern.
type Option func(*Material)

// New builds a Material from Default() plus the given overrides.
func New(opts ...Option) Material {
	m := Default()
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func WithPattern(p pattern.Pattern) Option { return func(m *Material) { m.Pattern = p } }
func WithColor(c prim.Color) Option {
	return func(m *Material) { m.Pattern = pattern.NewSolid(c) }
}
func WithAmbient(v float64) Option      { return func(m *Material) { m.Ambient = v } }
func WithDiffuse(v float64) Option      { return func(m *Material) { m.Diffuse = v } }
func WithSpecular(v float64) Option     { return func(m *Material) { m.Specular = v } }
func WithShininess(v float64) Option    { return func(m *Material) { m.Shininess = v } }
func WithReflective(v float64) Option   { return func(m *Material) { m.Reflective = v } }
func WithTransparency(v float64) Option { return func(m *Material) { m.Transparency = v } }
func WithRefractiveIndex(v float64) Option {
	return func(m *Material) { m.RefractiveIndex = v }
}
