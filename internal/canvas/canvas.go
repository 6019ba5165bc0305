// Package canvas is the pixel container and the PPM serialization boundary:
// the point where unclamped floating-point color arithmetic becomes the
// clamped, byte-quantized raster a viewer can display. Grounded on the
// teacher's image.RGBA usage in Render, generalized to the Netpbm formats
// this spec requires instead of Go's standard image codecs.
package canvas

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/brindlefield/raytracer/internal/prim"
)

// Canvas is a width x height grid of unclamped colors, row-major with
// (0, 0) at the top-left.
type Canvas struct {
	Width, Height int
	pixels        []prim.Color
}

// New returns a canvas filled with black.
func New(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height, pixels: make([]prim.Color, width*height)}
}

func (c *Canvas) index(x, y int) int { return y*c.Width + x }

// At returns the color at (x, y).
func (c *Canvas) At(x, y int) prim.Color {
	return c.pixels[c.index(x, y)]
}

// Set writes the color at (x, y). Workers only ever write the pixels they
// own, so concurrent Set calls from a render's worker pool never race.
func (c *Canvas) Set(x, y int, col prim.Color) {
	c.pixels[c.index(x, y)] = col
}

func to255(c float64) int {
	v := int(prim.Clamp01(c)*255 + 0.5)
	if v > 255 {
		v = 255
	}
	return v
}

// WritePPM writes the canvas as an ASCII P3 PPM, wrapping color value
// lines so none exceeds 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height)

	lineLen := 0
	writeToken := func(tok string) error {
		if lineLen > 0 && lineLen+1+len(tok) > 70 {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
			lineLen = 0
		} else if lineLen > 0 {
			if _, err := bw.WriteString(" "); err != nil {
				return err
			}
			lineLen++
		}
		if _, err := bw.WriteString(tok); err != nil {
			return err
		}
		lineLen += len(tok)
		return nil
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col := c.At(x, y)
			for _, ch := range [3]float64{col.R, col.G, col.B} {
				if err := writeToken(strconv.Itoa(to255(ch))); err != nil {
					return err
				}
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
		lineLen = 0
	}
	return bw.Flush()
}

// WritePPMBinary writes the canvas as a binary P6 PPM: the header followed
// by height*width*3 raw bytes in row-major order.
func (c *Canvas) WritePPMBinary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P6\n%d %d\n255\n", c.Width, c.Height)

	buf := make([]byte, 3)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col := c.At(x, y)
			buf[0] = byte(to255(col.R))
			buf[1] = byte(to255(col.G))
			buf[2] = byte(to255(col.B))
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

var errMalformedPPM = errors.New("canvas: malformed PPM")

// ReadPPM parses a P3 or P6 PPM, reporting errMalformedPPM for any token
// that does not fit the format.
func ReadPPM(r io.Reader) (*Canvas, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, errMalformedPPM
	}
	if magic != "P3" && magic != "P6" {
		return nil, errMalformedPPM
	}

	width, err := readIntToken(br)
	if err != nil {
		return nil, errMalformedPPM
	}
	height, err := readIntToken(br)
	if err != nil {
		return nil, errMalformedPPM
	}
	maxVal, err := readIntToken(br)
	if err != nil || maxVal < 1 || maxVal > 255 {
		return nil, errMalformedPPM
	}

	cv := New(width, height)
	if magic == "P3" {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, err := readIntToken(br)
				if err != nil {
					return nil, errMalformedPPM
				}
				g, err := readIntToken(br)
				if err != nil {
					return nil, errMalformedPPM
				}
				b, err := readIntToken(br)
				if err != nil {
					return nil, errMalformedPPM
				}
				cv.Set(x, y, prim.RGB(float64(r)/float64(maxVal), float64(g)/float64(maxVal), float64(b)/float64(maxVal)))
			}
		}
		return cv, nil
	}

	// P6: exactly one whitespace byte separates the header from the raw
	// binary raster (already consumed by readIntToken's trailing skip).
	raw := make([]byte, width*height*3)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, errMalformedPPM
	}
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := raw[i], raw[i+1], raw[i+2]
			i += 3
			cv.Set(x, y, prim.RGB(float64(r)/float64(maxVal), float64(g)/float64(maxVal), float64(b)/float64(maxVal)))
		}
	}
	return cv, nil
}

func isPPMSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\f'
}

// readToken reads the next whitespace-delimited token, skipping
// "#...\n"-style comments, per the tokenizer this spec's PPM reader uses.
func readToken(br *bufio.Reader) (string, error) {
	var buf []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if len(buf) > 0 {
				return string(buf), nil
			}
			return "", err
		}
		if b == '#' {
			for {
				b, err := br.ReadByte()
				if err != nil || b == '\n' {
					break
				}
			}
			continue
		}
		if isPPMSpace(b) {
			if len(buf) > 0 {
				return string(buf), nil
			}
			continue
		}
		buf = append(buf, b)
	}
}

func readIntToken(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}
