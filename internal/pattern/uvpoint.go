// Package pattern implements the shape-local color model: uv-points, the
// polymorphic Pattern interface, the composite/binary pattern variants, and
// the uv-backed texture patterns (checkers, noise, image) plus their
// mapping functions (spherical, planar, cylindrical, cube-face).
package pattern

import "fmt"

// UVPoint is a 2-D texture coordinate, each component in [0,1].
type UVPoint struct {
	U, V float64
}

func (p UVPoint) String() string {
	return fmt.Sprintf("uv(%.5f, %.5f)", p.U, p.V)
}
