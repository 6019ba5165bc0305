// Package sceneio reads the scene-description file formats this spec's
// core cooperates with: the Wavefront OBJ subset describing triangle
// meshes. Parse failures return (nil, error) rather than a partial scene,
// matching the teacher's own parser packages (internal/gml) which never
// return a half-built AST on error.
package sceneio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brindlefield/raytracer/internal/prim"
	"github.com/brindlefield/raytracer/internal/shape"
)

// ObjData holds the parsed vertices/normals and the group tree built from
// them, plus a count of lines that were ignored (anything but v/vn/f/g).
type ObjData struct {
	Vertices []prim.Tuple
	Normals  []prim.Tuple

	DefaultGroup *shape.Group
	Groups       map[string]*shape.Group

	IgnoredLines int
}

// ToGroup returns a single root group containing the default group and
// every named group, ready to be added to a world as one shape.
func (d *ObjData) ToGroup() *shape.Group {
	root := shape.NewGroup()
	if !d.DefaultGroup.IsEmpty() {
		root.AddChild(d.DefaultGroup)
	}
	for _, g := range d.Groups {
		if !g.IsEmpty() {
			root.AddChild(g)
		}
	}
	return root
}

// ParseObj reads the Wavefront-OBJ subset this spec requires: v, vn, f
// (triangle-fan with optional v/vt/vn indices), and g. Any other line is
// counted as ignored, never an error.
func ParseObj(r io.Reader) (*ObjData, error) {
	data := &ObjData{
		DefaultGroup: shape.NewGroup(),
		Groups:       make(map[string]*shape.Group),
	}
	currentGroup := data.DefaultGroup

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parsePoint(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("sceneio: line %d: %w", lineNo, err)
			}
			data.Vertices = append(data.Vertices, p)
		case "vn":
			n, err := parsePoint(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("sceneio: line %d: %w", lineNo, err)
			}
			data.Normals = append(data.Normals, n)
		case "f":
			tris, err := parseFace(fields[1:], data.Vertices, data.Normals)
			if err != nil {
				return nil, fmt.Errorf("sceneio: line %d: %w", lineNo, err)
			}
			for _, tri := range tris {
				currentGroup.AddChild(tri)
			}
		case "g":
			name := "default"
			if len(fields) > 1 {
				name = fields[1]
			}
			g, ok := data.Groups[name]
			if !ok {
				g = shape.NewGroup()
				data.Groups[name] = g
			}
			currentGroup = g
		default:
			data.IgnoredLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

func parsePoint(fields []string) (prim.Tuple, error) {
	if len(fields) < 3 {
		return prim.Tuple{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	vals := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return prim.Tuple{}, err
		}
		vals[i] = v
	}
	return prim.Point(vals[0], vals[1], vals[2]), nil
}

// faceVertex is a 1-based (position, normal) index pair parsed from one
// f-line token; normal is 0 when absent.
type faceVertex struct {
	v, vn int
}

func parseFaceVertex(tok string) (faceVertex, error) {
	parts := strings.Split(tok, "/")
	v, err := strconv.Atoi(parts[0])
	if err != nil || v < 1 {
		return faceVertex{}, fmt.Errorf("invalid vertex index %q", tok)
	}
	fv := faceVertex{v: v}
	if len(parts) >= 3 && parts[2] != "" {
		vn, err := strconv.Atoi(parts[2])
		if err != nil || vn < 1 {
			return faceVertex{}, fmt.Errorf("invalid normal index %q", tok)
		}
		fv.vn = vn
	}
	return fv, nil
}

// parseFace fans an n-gon face (n >= 3) into n-2 triangles sharing the
// first vertex, smooth-shaded when every referenced vertex carries a
// normal index.
func parseFace(fields []string, vertices, normals []prim.Tuple) ([]shape.Shape, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}
	verts := make([]faceVertex, len(fields))
	for i, f := range fields {
		fv, err := parseFaceVertex(f)
		if err != nil {
			return nil, err
		}
		if fv.v > len(vertices) {
			return nil, fmt.Errorf("vertex index %d out of range", fv.v)
		}
		verts[i] = fv
	}

	var tris []shape.Shape
	for i := 1; i < len(verts)-1; i++ {
		a, b, c := verts[0], verts[i], verts[i+1]
		p1 := vertices[a.v-1]
		p2 := vertices[b.v-1]
		p3 := vertices[c.v-1]

		if a.vn > 0 && b.vn > 0 && c.vn > 0 && a.vn <= len(normals) && b.vn <= len(normals) && c.vn <= len(normals) {
			tris = append(tris, shape.NewSmoothTriangle(p1, p2, p3, normals[a.vn-1], normals[b.vn-1], normals[c.vn-1]))
		} else {
			tris = append(tris, shape.NewTriangle(p1, p2, p3))
		}
	}
	return tris, nil
}
