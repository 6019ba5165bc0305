package bench

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func makeRandomImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rand.Intn(256)),
				G: uint8(rand.Intn(256)),
				B: uint8(rand.Intn(256)),
				A: 255,
			})
		}
	}
	return img
}

func TestSSIMSameImage(t *testing.T) {
	img := makeRandomImage(100, 100)
	ssim, err := SSIM(img, img)
	if err != nil {
		t.Fatal(err)
	}
	if ssim < 0.999 {
		t.Errorf("SSIM is %f, want ~1.0", ssim)
	}
}

func TestSSIMMismatchedBounds(t *testing.T) {
	img1 := makeRandomImage(100, 100)
	img2 := makeRandomImage(50, 50)
	if _, err := SSIM(img1, img2); err == nil {
		t.Errorf("expected an error comparing differently sized images")
	}
}

func TestSSIMTooSmall(t *testing.T) {
	img := makeRandomImage(3, 3)
	if _, err := SSIM(img, img); err == nil {
		t.Errorf("expected an error comparing images smaller than the kernel")
	}
}

// Run benchmarks with:
// go test ./internal/bench -run ^$ -bench . -cpuprofile=/tmp/cpu.prof
// go tool pprof -http=:8080 /tmp/cpu.prof

func BenchmarkSSIM(b *testing.B) {
	const width = 1000
	const height = 1000

	img1 := makeRandomImage(width, height)
	img2 := makeRandomImage(width, height)

	for b.Loop() {
		SSIM(img1, img2)
	}
}
