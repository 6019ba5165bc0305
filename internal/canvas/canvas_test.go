package canvas

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/brindlefield/raytracer/internal/prim"
)

var approxOpts = cmpopts.EquateApprox(1.0/255.0, 0.0)

func TestNewCanvasIsBlack(t *testing.T) {
	c := New(10, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			if !c.At(x, y).Equal(prim.Black) {
				t.Fatalf("pixel (%d,%d) = %v, want black", x, y, c.At(x, y))
			}
		}
	}
}

func TestSetAndAt(t *testing.T) {
	c := New(10, 20)
	red := prim.RGB(1, 0, 0)
	c.Set(2, 3, red)
	if !c.At(2, 3).Equal(red) {
		t.Errorf("got %v, want %v", c.At(2, 3), red)
	}
}

func TestWritePPMHeader(t *testing.T) {
	c := New(5, 3)
	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "P3" || lines[1] != "5 3" || lines[2] != "255" {
		t.Errorf("bad header: %v", lines[:3])
	}
}

func TestWritePPMPixelData(t *testing.T) {
	c := New(5, 3)
	c.Set(0, 0, prim.RGB(1.5, 0, 0))
	c.Set(2, 1, prim.RGB(0, 0.5, 0))
	c.Set(4, 2, prim.RGB(-0.5, 0, 1))

	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")

	wantRow0 := "255 0 0 0 0 0 0 0 0 0 0 0 0 0 0"
	wantRow1 := "0 0 0 0 0 0 0 128 0 0 0 0 0 0 0"
	wantRow2 := "0 0 0 0 0 0 0 0 0 0 0 0 0 0 255"

	if lines[3] != wantRow0 {
		t.Errorf("row0 = %q, want %q", lines[3], wantRow0)
	}
	if lines[4] != wantRow1 {
		t.Errorf("row1 = %q, want %q", lines[4], wantRow1)
	}
	if lines[5] != wantRow2 {
		t.Errorf("row2 = %q, want %q", lines[5], wantRow2)
	}
}

func TestWritePPMWrapsLongLines(t *testing.T) {
	c := New(10, 2)
	full := prim.RGB(1, 0.8, 0.6)
	for y := 0; y < 2; y++ {
		for x := 0; x < 10; x++ {
			c.Set(x, y, full)
		}
	}
	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for _, l := range lines[3:] {
		if len(l) > 70 {
			t.Errorf("line exceeds 70 chars: %q (%d)", l, len(l))
		}
	}
}

func TestPPMEndsWithNewline(t *testing.T) {
	c := New(3, 3)
	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("PPM output does not end with newline")
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	c := New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c.Set(x, y, prim.RGB(float64(x)/3.0, float64(y)/3.0, 0.5))
		}
	}
	var buf bytes.Buffer
	if err := c.WritePPMBinary(&buf); err != nil {
		t.Fatalf("WritePPMBinary: %v", err)
	}
	got, err := ReadPPM(&buf)
	if err != nil {
		t.Fatalf("ReadPPM: %v", err)
	}
	if got.Width != 4 || got.Height != 4 {
		t.Fatalf("dims = %dx%d, want 4x4", got.Width, got.Height)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := c.At(x, y)
			if diff := cmp.Diff(got.At(x, y), want, approxOpts); diff != "" {
				t.Errorf("pixel (%d,%d) mismatch (-got +want):\n%s", x, y, diff)
			}
		}
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	c := New(3, 2)
	c.Set(0, 0, prim.RGB(1, 0, 0))
	c.Set(2, 1, prim.RGB(0, 1, 1))

	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	got, err := ReadPPM(&buf)
	if err != nil {
		t.Fatalf("ReadPPM: %v", err)
	}
	if diff := cmp.Diff(got.At(0, 0), prim.RGB(1, 0, 0), approxOpts); diff != "" {
		t.Errorf("(0,0) mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(got.At(2, 1), prim.RGB(0, 1, 1), approxOpts); diff != "" {
		t.Errorf("(2,1) mismatch (-got +want):\n%s", diff)
	}
}

func TestReadPPMSkipsComments(t *testing.T) {
	input := "P3\n# this is a comment\n2 2\n# another\n255\n255 0 0 0 255 0\n0 0 255 255 255 255\n"
	got, err := ReadPPM(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadPPM: %v", err)
	}
	if diff := cmp.Diff(got.At(0, 0), prim.RGB(1, 0, 0), approxOpts); diff != "" {
		t.Errorf("(0,0) mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(got.At(1, 1), prim.RGB(1, 1, 1), approxOpts); diff != "" {
		t.Errorf("(1,1) mismatch (-got +want):\n%s", diff)
	}
}

func TestReadPPMRejectsBadMagic(t *testing.T) {
	_, err := ReadPPM(strings.NewReader("P9\n2 2\n255\n0 0 0 0 0 0 0 0 0 0 0 0\n"))
	if err == nil {
		t.Errorf("expected an error for an unrecognized magic token")
	}
}

func TestReadPPMRejectsBadMaxValue(t *testing.T) {
	_, err := ReadPPM(strings.NewReader("P3\n1 1\n999\n0 0 0\n"))
	if err == nil {
		t.Errorf("expected an error for an out-of-range max value")
	}
}
