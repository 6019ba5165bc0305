// The bench command compares two PPM renders of the same scene with
// structural similarity (SSIM), flagging an unintended regression between
// a baseline and a candidate render.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/brindlefield/raytracer/internal/bench"
	"github.com/brindlefield/raytracer/internal/canvas"
)

var (
	baselinePath  = flag.String("baseline", "", "baseline PPM render")
	candidatePath = flag.String("candidate", "", "candidate PPM render")
	threshold     = flag.Float64("threshold", 0.98, "minimum acceptable SSIM score")
)

func loadPPM(path string) (*canvas.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return canvas.ReadPPM(f)
}

func main() {
	flag.Parse()
	if *baselinePath == "" || *candidatePath == "" {
		log.Fatal("--baseline and --candidate are required")
	}

	baseline, err := loadPPM(*baselinePath)
	if err != nil {
		log.Fatalf("load baseline: %v", err)
	}
	candidate, err := loadPPM(*candidatePath)
	if err != nil {
		log.Fatalf("load candidate: %v", err)
	}

	score, err := bench.CompareRenders(baseline.ToImage(), candidate.ToImage())
	if err != nil {
		log.Fatalf("compare: %v", err)
	}

	fmt.Printf("SSIM = %.4f\n", score)
	if score < *threshold {
		fmt.Printf("below threshold %.4f\n", *threshold)
		os.Exit(1)
	}
}
