package canvas

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/brindlefield/raytracer/internal/prim"
)

// LoadTexture decodes an image file (PNG, JPEG, ...) from path and converts
// it into a Canvas so a uv-image pattern can sample it by (x, y) like any
// other canvas. maxWidth/maxHeight of 0 skip resampling; otherwise the
// image is downsized to fit within the bound, keeping aspect ratio.
func LoadTexture(path string, maxWidth, maxHeight int) (*Canvas, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	if maxWidth > 0 || maxHeight > 0 {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}
	return FromImage(img), nil
}

// FromImage converts any standard image.Image into a Canvas, quantizing
// each channel back down into [0,1].
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	cv := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			cv.Set(x, y, prim.RGB(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff))
		}
	}
	return cv
}

// ToImage renders the canvas into a standard image.RGBA, the bridge back
// to Go's image ecosystem for the binaries that write PNG/JPEG previews
// alongside the PPM output this spec requires.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col := c.At(x, y)
			img.Set(x, y, color.NRGBA{
				R: uint8(to255(col.R)),
				G: uint8(to255(col.G)),
				B: uint8(to255(col.B)),
				A: 255,
			})
		}
	}
	return img
}
