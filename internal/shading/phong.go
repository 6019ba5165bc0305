package shading

import (
	"math"

	"github.com/brindlefield/raytracer/internal/material"
	"github.com/brindlefield/raytracer/internal/pattern"
	"github.com/brindlefield/raytracer/internal/prim"
	"github.com/brindlefield/raytracer/internal/shape"
)

// Lighting implements the Phong reflection model: ambient + diffuse +
// specular contributions of a single light at a surface point, grounded
// on original_source's phong_illumination. inShadow skips the diffuse and
// specular terms, leaving only ambient lighting.
//
// The color is always sampled from the material's pattern (a plain-colored
// material carries a Solid pattern) via the full shape-transform ->
// pattern-transform composition chain described in spec §4.2; a material
// with a nil Pattern is not handled. The world-to-object matrix walks obj's full parent
// chain (shape.WorldToObjectTransform), not just obj's own inverse, so a
// patterned shape nested inside a transformed group samples its pattern in
// the right space.
func Lighting(mat material.Material, obj shape.Shape, light PointLight, point, eye, normal prim.Tuple, inShadow bool) prim.Color {
	surfaceColor := pattern.ColorAtShape(mat.Pattern, shape.WorldToObjectTransform(obj), point)

	effectiveColor := surfaceColor.Mul(light.Color)
	ambient := effectiveColor.Scale(mat.Ambient)

	if inShadow {
		return ambient
	}

	lightVec := light.Position.Sub(point).Normalize()
	lightDotNormal := lightVec.Dot(normal)

	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Scale(mat.Diffuse * lightDotNormal)

	reflectVec := lightVec.Neg().Reflect(normal)
	reflectDotEye := reflectVec.Dot(eye)

	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, mat.Shininess)
	specular := light.Color.Scale(mat.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
