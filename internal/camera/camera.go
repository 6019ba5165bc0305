// Package camera converts a viewpoint and field of view into per-pixel
// rays and drives the parallel render dispatcher, generalizing the
// teacher's fixed-fov, row-major Render loop into the view-matrix-backed
// camera model and worker-pool dispatch this spec requires.
package camera

import (
	"math"
	"runtime"

	"github.com/alitto/pond/v2"

	"github.com/brindlefield/raytracer/internal/canvas"
	"github.com/brindlefield/raytracer/internal/prim"
	"github.com/brindlefield/raytracer/internal/world"
)

// Camera derives its viewport geometry from Hsize, Vsize, and FieldOfView
// (radians) at construction, then reuses those derived values for every
// ray it casts.
type Camera struct {
	Hsize, Vsize int
	FieldOfView  float64
	Transform    prim.Matrix
	invTransform prim.Matrix

	halfWidth, halfHeight, pixelSize float64
}

// New builds a camera looking down -Z by default (Transform = identity);
// call SetTransform to aim it.
func New(hsize, vsize int, fov float64) *Camera {
	c := &Camera{Hsize: hsize, Vsize: vsize, FieldOfView: fov}
	c.SetTransform(prim.Identity4())
	return c
}

// SetTransform installs the camera's view transform (typically the result
// of prim.ViewTransform) and caches its inverse.
func (c *Camera) SetTransform(m prim.Matrix) {
	c.Transform = m
	c.invTransform = m.Inverse()
	c.recomputeViewport()
}

func (c *Camera) recomputeViewport() {
	halfView := math.Tan(c.FieldOfView / 2)
	aspect := float64(c.Hsize) / float64(c.Vsize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(c.Hsize)
}

// RayForSample builds the ray through pixel (px, py), offset within the
// pixel by the fractional subpixel sample (sx, sy) in [0,1)^2 — (0.5, 0.5)
// is the pixel center.
func (c *Camera) RayForSample(px, py int, sx, sy float64) prim.Ray {
	xOffset := (float64(px) + sx) * c.pixelSize
	yOffset := (float64(py) + sy) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.invTransform.MulTuple(prim.Point(worldX, worldY, -1))
	origin := c.invTransform.MulTuple(prim.Origin)
	direction := pixel.Sub(origin).Normalize()

	return prim.NewRay(origin, direction)
}

// RayForPixel is RayForSample anchored at the pixel's exact center.
func (c *Camera) RayForPixel(px, py int) prim.Ray {
	return c.RayForSample(px, py, 0.5, 0.5)
}

// RenderParams controls optional render behavior beyond geometry.
type RenderParams struct {
	// Antialias enables an n x n subpixel sample grid, averaged into each
	// pixel's final color. n is AntialiasSamples, default 3 when unset.
	Antialias        bool
	AntialiasSamples int

	// Workers caps the render worker pool; 0 uses runtime.NumCPU().
	Workers int

	// Depth caps reflection/refraction recursion; 0 uses world.MaxRecursionDepth.
	Depth int
}

func (p RenderParams) samples() int {
	if !p.Antialias {
		return 1
	}
	if p.AntialiasSamples > 0 {
		return p.AntialiasSamples
	}
	return 3
}

func (p RenderParams) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.NumCPU()
}

func (p RenderParams) depth() int {
	if p.Depth > 0 {
		return p.Depth
	}
	return world.MaxRecursionDepth
}

// Render colors every pixel of a Hsize x Vsize canvas by partitioning rows
// across a fixed worker pool; w must not be mutated while a render is in
// flight.
func Render(c *Camera, w *world.World, params RenderParams) *canvas.Canvas {
	out := canvas.New(c.Hsize, c.Vsize)
	n := params.samples()

	depth := params.depth()
	pool := pond.NewPool(params.workers())
	for row := 0; row < c.Vsize; row++ {
		row := row
		pool.Submit(func() {
			for col := 0; col < c.Hsize; col++ {
				out.Set(col, row, c.colorForPixel(w, col, row, n, depth))
			}
		})
	}
	pool.StopAndWait()
	return out
}

func (c *Camera) colorForPixel(w *world.World, px, py, n, depth int) prim.Color {
	if n <= 1 {
		r := c.RayForPixel(px, py)
		return w.ColorAt(r, depth)
	}

	total := prim.Black
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sx := (float64(i) + 0.5) / float64(n)
			sy := (float64(j) + 0.5) / float64(n)
			r := c.RayForSample(px, py, sx, sy)
			total = total.Add(w.ColorAt(r, depth))
		}
	}
	return total.Scale(1.0 / float64(n*n))
}
