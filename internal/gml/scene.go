package gml

import (
	"fmt"
	"math"

	"github.com/brindlefield/raytracer/internal/camera"
	"github.com/brindlefield/raytracer/internal/canvas"
	"github.com/brindlefield/raytracer/internal/prim"
	"github.com/brindlefield/raytracer/internal/shading"
	"github.com/brindlefield/raytracer/internal/shape"
	"github.com/brindlefield/raytracer/internal/world"
)

// toTuple converts a GML point/vector triple into the engine's tuple type.
func toTuple(p Point, w float64) prim.Tuple {
	return prim.Tuple{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z), W: w}
}

func toColor(p Point) prim.Color {
	return prim.RGB(float64(p.X), float64(p.Y), float64(p.Z))
}

// buildShape lowers one SceneObject into a shape.Shape tree. The GML
// surface function describes a per-point shader this bridge doesn't
// evaluate; every primitive instead gets the engine's default material,
// since faithfully interpreting an arbitrary GML closure as a shader
// would mean re-deriving a second evaluator inside the renderer itself.
func buildShape(obj SceneObject) (shape.Shape, error) {
	switch o := obj.(type) {
	case *Sphere:
		s := shape.NewSphere()
		s.SetTransform(prim.Translation(float64(o.Center.X), float64(o.Center.Y), float64(o.Center.Z)).
			Mul(prim.Scaling(float64(o.Radius), float64(o.Radius), float64(o.Radius))))
		return s, nil
	case *Cube:
		return shape.NewCube(), nil
	case *Plane:
		return shape.NewPlane(), nil
	case *Union:
		if len(o.Objects) != 2 {
			return nil, fmt.Errorf("gml: union with %d operands, want 2", len(o.Objects))
		}
		left, err := buildShape(o.Objects[0])
		if err != nil {
			return nil, err
		}
		right, err := buildShape(o.Objects[1])
		if err != nil {
			return nil, err
		}
		return shape.NewCSG(shape.Union, left, right), nil
	case *Transformed:
		inner, err := buildShape(o.Inner)
		if err != nil {
			return nil, err
		}
		inner.SetTransform(o.Matrix.Mul(inner.Transform()))
		return inner, nil
	default:
		return nil, fmt.Errorf("gml: %T has no shape lowering", obj)
	}
}

// BuildWorld lowers a render call's arguments into a renderable World and
// a Camera placed at (0, 0, -5) looking along +Z at the scene's origin,
// ready for camera.Render.
// The ambient point scales every shape's material ambient coefficient,
// since the shading model has no separate world-ambient term of its own.
func BuildWorld(args *RenderArgs) (*world.World, *camera.Camera, error) {
	w := world.New()

	root, err := buildShape(args.Scene)
	if err != nil {
		return nil, nil, err
	}
	if args.AmbientLight != nil {
		brightness := (float64(args.AmbientLight.X) + float64(args.AmbientLight.Y) + float64(args.AmbientLight.Z)) / 3
		scaleAmbient(root, brightness)
	}
	w.AddShape(root)

	for _, l := range args.Lights {
		w.AddLight(shading.NewPointLight(toTuple(l.Position, 1), toColor(l.Color)))
	}

	cam := camera.New(args.Width, args.Height, args.Fov*math.Pi/180)
	cam.SetTransform(prim.ViewTransform(prim.Point(0, 0, -5), prim.Origin, prim.Vector(0, 1, 0)))

	return w, cam, nil
}

func scaleAmbient(s shape.Shape, brightness float64) {
	m := s.Material()
	m.Ambient *= brightness
	s.SetMaterial(m)

	switch n := s.(type) {
	case *shape.CSG:
		scaleAmbient(n.Left, brightness)
		scaleAmbient(n.Right, brightness)
	case *shape.Group:
		for _, c := range n.Children() {
			scaleAmbient(c, brightness)
		}
	}
}

// Render lowers args into a world/camera pair and renders it, suitable as
// an EvalState.Render implementation.
func Render(args *RenderArgs, params camera.RenderParams) (*canvas.Canvas, error) {
	w, cam, err := BuildWorld(args)
	if err != nil {
		return nil, err
	}
	params.Depth = args.Depth
	return camera.Render(cam, w, params), nil
}
