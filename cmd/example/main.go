// The example command renders either a canned scene or a GML program to
// a PNG file, exercising the engine end to end from the command line.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/brindlefield/raytracer/internal/camera"
	"github.com/brindlefield/raytracer/internal/canvas"
	"github.com/brindlefield/raytracer/internal/gml"
	"github.com/brindlefield/raytracer/internal/logging"
	"github.com/brindlefield/raytracer/internal/material"
	"github.com/brindlefield/raytracer/internal/pattern"
	"github.com/brindlefield/raytracer/internal/prim"
	"github.com/brindlefield/raytracer/internal/shading"
	"github.com/brindlefield/raytracer/internal/shape"
	"github.com/brindlefield/raytracer/internal/world"
)

var (
	gmlFile   = flag.String("gml_file", "", "gml filename to run")
	outFile   = flag.String("out_file", "", "png filename to write")
	widthPx   = flag.Int("width", 1900, "canvas width in pixels, for the canned scene")
	heightPx  = flag.Int("height", 1200, "canvas height in pixels, for the canned scene")
	antialias = flag.Bool("antialias", true, "enable multisampled antialiasing")
)

func renderCannedScene(w, h int) *canvas.Canvas {
	floor := shape.NewPlane()
	floor.SetMaterial(material.New(material.WithPattern(pattern.NewCheckers(prim.RGB(0.9, 0.9, 0.9), prim.RGB(0.1, 0.1, 0.1)))))

	glass := shape.NewSphere()
	glass.SetTransform(prim.Translation(0, 1, -5))
	glass.SetMaterial(material.New(
		material.WithColor(prim.RGB(0.8, 0.2, 0.2)),
		material.WithReflective(0.9),
		material.WithTransparency(0.9),
		material.WithRefractiveIndex(1.5),
	))

	dull := shape.NewSphere()
	dull.SetTransform(prim.Translation(2, 1, -8))
	dull.SetMaterial(material.New(
		material.WithColor(prim.RGB(0.2, 0.2, 0.8)),
		material.WithReflective(0.2),
	))

	mirror := shape.NewSphere()
	mirror.SetTransform(prim.Translation(-2, 1, -6))
	mirror.SetMaterial(material.New(
		material.WithColor(prim.RGB(0.2, 0.8, 0.2)),
		material.WithReflective(0.8),
	))

	w3 := world.New()
	w3.AddShape(floor)
	w3.AddShape(glass)
	w3.AddShape(dull)
	w3.AddShape(mirror)
	w3.AddLight(shading.NewPointLight(prim.Point(5, 5, 0), prim.White))

	cam := camera.New(w, h, math.Pi/3)
	cam.SetTransform(prim.ViewTransform(prim.Point(0, 2, 9), prim.Point(0, 1, -5), prim.Vector(0, 1, 0)))

	return camera.Render(cam, w3, camera.RenderParams{Antialias: *antialias})
}

func renderFromGMLFile(filename string) (*canvas.Canvas, error) {
	prog, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	tokens, err := gml.NewParser(string(prog)).Parse()
	if err != nil {
		return nil, err
	}
	var out *canvas.Canvas
	st := gml.NewEvalState()
	st.Render = func(e *gml.EvalState, args *gml.RenderArgs) error {
		c, err := gml.Render(args, camera.RenderParams{Antialias: *antialias})
		if err != nil {
			return err
		}
		out = c
		return nil
	}
	if err := st.Eval(tokens); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("%s called no render", filename)
	}
	return out, nil
}

func main() {
	flag.Parse()
	if err := logging.Init(); err != nil {
		log.Fatalf("logging init error: %v", err)
	}
	defer logging.Sync()

	if len(*outFile) == 0 {
		log.Fatal("--out_file is required")
	}

	var img *canvas.Canvas
	var err error
	if len(*gmlFile) == 0 {
		log.Print("--gml_file not specified, using canned scene.")
		img = renderCannedScene(*widthPx, *heightPx)
	} else {
		img, err = renderFromGMLFile(*gmlFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	f, err := os.Create(*outFile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img.ToImage()); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *outFile)
}
