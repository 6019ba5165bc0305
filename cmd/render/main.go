// The render command builds a scene directly against the engine's Go API
// (rather than through GML) and writes it out as a PPM image, optionally
// loading a Wavefront-OBJ mesh as the centerpiece of the scene.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/brindlefield/raytracer/internal/camera"
	"github.com/brindlefield/raytracer/internal/logging"
	"github.com/brindlefield/raytracer/internal/material"
	"github.com/brindlefield/raytracer/internal/pattern"
	"github.com/brindlefield/raytracer/internal/prim"
	"github.com/brindlefield/raytracer/internal/sceneio"
	"github.com/brindlefield/raytracer/internal/shading"
	"github.com/brindlefield/raytracer/internal/shape"
	"github.com/brindlefield/raytracer/internal/world"
)

var (
	objFile   = flag.String("obj", "", "Wavefront OBJ file to render as the scene's centerpiece")
	outFile   = flag.String("out", "render.ppm", "output PPM path")
	widthPx   = flag.Int("width", 800, "canvas width in pixels")
	heightPx  = flag.Int("height", 600, "canvas height in pixels")
	fovDeg    = flag.Float64("fov", 60, "camera field of view, in degrees")
	antialias = flag.Bool("antialias", false, "enable multisampled antialiasing")
	samples   = flag.Int("samples", 0, "antialias subsample grid size; 0 picks the default")
	workers   = flag.Int("workers", 0, "render worker pool size; 0 uses every CPU")
	binary    = flag.Bool("binary", false, "write PPM P6 instead of the default P3")
)

func buildScene() (*world.World, error) {
	w := world.New()
	w.AddLight(shading.NewPointLight(prim.Point(-10, 10, -10), prim.White))

	floor := shape.NewPlane()
	floor.SetMaterial(material.New(
		material.WithPattern(pattern.NewCheckers(prim.RGB(0.8, 0.8, 0.8), prim.RGB(0.2, 0.2, 0.2))),
		material.WithReflective(0.1),
	))
	w.AddShape(floor)

	if *objFile == "" {
		s := shape.NewSphere()
		s.SetTransform(prim.Translation(0, 1, 0))
		s.SetMaterial(material.New(material.WithColor(prim.RGB(0.6, 0.2, 0.8))))
		w.AddShape(s)
		return w, nil
	}

	f, err := os.Open(*objFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := sceneio.ParseObj(f)
	if err != nil {
		return nil, err
	}
	if data.IgnoredLines > 0 {
		logging.Log.Sugar().Infof("%s: ignored %d unrecognized lines", *objFile, data.IgnoredLines)
	}

	mesh := data.ToGroup()
	m := material.New(material.WithColor(prim.RGB(0.6, 0.7, 0.9)))
	for _, g := range mesh.Children() {
		g.SetMaterial(m)
		if sub, ok := g.(*shape.Group); ok {
			for _, tri := range sub.Children() {
				tri.SetMaterial(m)
			}
		}
	}
	w.AddShape(mesh)
	return w, nil
}

func main() {
	flag.Parse()
	if err := logging.Init(); err != nil {
		log.Fatalf("logging init error: %v", err)
	}
	defer logging.Sync()

	w, err := buildScene()
	if err != nil {
		logging.Log.Sugar().Fatalf("build scene: %v", err)
	}

	cam := camera.New(*widthPx, *heightPx, *fovDeg*math.Pi/180)
	cam.SetTransform(prim.ViewTransform(prim.Point(0, 1.5, -5), prim.Point(0, 1, 0), prim.Vector(0, 1, 0)))

	img := camera.Render(cam, w, camera.RenderParams{
		Antialias:        *antialias,
		AntialiasSamples: *samples,
		Workers:          *workers,
	})

	f, err := os.Create(*outFile)
	if err != nil {
		logging.Log.Sugar().Fatalf("create %s: %v", *outFile, err)
	}
	defer f.Close()

	if *binary {
		err = img.WritePPMBinary(f)
	} else {
		err = img.WritePPM(f)
	}
	if err != nil {
		logging.Log.Sugar().Fatalf("write %s: %v", *outFile, err)
	}
	logging.Log.Sugar().Infof("wrote %s", *outFile)
}
