package prim

import "fmt"

// Color is an RGB triple. Arithmetic is unclamped; values are only clamped
// to [0,1] at the canvas boundary (see internal/canvas).
type Color struct {
	R, G, B float64
}

// RGB constructs a color from unclamped components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	Red   = RGB(1, 0, 0)
	Green = RGB(0, 1, 0)
	Blue  = RGB(0, 0, 1)
)

func (c Color) String() string {
	return fmt.Sprintf("color(%.5f, %.5f, %.5f)", c.R, c.G, c.B)
}

// Equal compares two colors within Epsilon on every channel.
func (c Color) Equal(o Color) bool {
	return Eq(c.R, o.R) && Eq(c.G, o.G) && Eq(c.B, o.B)
}

// Add performs component-wise addition.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub performs component-wise subtraction.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul is the Hadamard (component-wise) product, used to combine a surface
// color with a light color.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Div divides every channel by s.
func (c Color) Div(s float64) Color {
	return c.Scale(1.0 / s)
}

// Lerp linearly interpolates from c to o by t in [0,1].
func (c Color) Lerp(o Color, t float64) Color {
	return c.Add(o.Sub(c).Scale(t))
}

// Clamp01 clamps every channel to [0,1].
func (c Color) Clamp01() Color {
	return Color{Clamp01(c.R), Clamp01(c.G), Clamp01(c.B)}
}
