// Package geometry builds the vertex data for the primitive shapes the demos draw.
// It has no GL dependency; the renderer uploads what it produces.
package geometry

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Stride is the number of floats per vertex: position(3) normal(3) uv(2).
const Stride = 8

// Primitive is how a vertex stream is assembled.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
	Lines
	LineStrip
	LineLoop
	Points
)

var primitiveNames = map[string]Primitive{
	"triangles":      Triangles,
	"triangle_strip": TriangleStrip,
	"triangle_fan":   TriangleFan,
	"lines":          Lines,
	"line_strip":     LineStrip,
	"line_loop":      LineLoop,
	"points":         Points,
}

// ParsePrimitive maps a config name such as "line_strip" to a Primitive.
func ParsePrimitive(name string) (Primitive, error) {
	p, ok := primitiveNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Triangles, fmt.Errorf("unknown primitive %q", name)
	}
	return p, nil
}

// IsLine reports whether the primitive rasterizes as lines.
func (p Primitive) IsLine() bool {
	return p == Lines || p == LineStrip || p == LineLoop
}

// Kind selects a shape generator.
type Kind int

const (
	KindCube Kind = iota
	KindWireCube
	KindSphere
	KindCylinder
	KindWireCylinder
	KindPlane
	KindFloor
)

// Shape fully identifies a mesh. It is comparable so the renderer can cache uploads by it.
type Shape struct {
	Kind   Kind
	Base   float32
	Top    float32
	Height float32
	Slices int
	Stacks int
}

// Common shapes.
var (
	Cube     = Shape{Kind: KindCube}
	WireCube = Shape{Kind: KindWireCube}
	Plane    = Shape{Kind: KindPlane}
	Floor    = Shape{Kind: KindFloor}
)

// Sphere is a unit-radius sphere; scale it to the wanted radius.
func Sphere(slices, stacks int) Shape {
	return Shape{Kind: KindSphere, Slices: slices, Stacks: stacks}
}

// Cylinder follows gluCylinder: base radius at z=0, top radius at z=height.
func Cylinder(base, top, height float32, slices, stacks int) Shape {
	return Shape{Kind: KindCylinder, Base: base, Top: top, Height: height, Slices: slices, Stacks: stacks}
}

// WireCylinder is Cylinder drawn as its slice and stack lines.
func WireCylinder(base, top, height float32, slices, stacks int) Shape {
	s := Cylinder(base, top, height, slices, stacks)
	s.Kind = KindWireCylinder
	return s
}

// Mesh is interleaved vertex data.
type Mesh struct {
	Data      []float32
	Primitive Primitive
}

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int { return len(m.Data) / Stride }

// Build generates the mesh for a shape.
func Build(s Shape) (Mesh, error) {
	switch s.Kind {
	case KindCube:
		return Mesh{Data: cube(), Primitive: Triangles}, nil
	case KindWireCube:
		return Mesh{Data: wireCube(), Primitive: Lines}, nil
	case KindSphere:
		if s.Slices < 3 || s.Stacks < 2 {
			return Mesh{}, fmt.Errorf("sphere needs at least 3 slices and 2 stacks, got %d/%d", s.Slices, s.Stacks)
		}
		return Mesh{Data: sphere(s.Slices, s.Stacks), Primitive: Triangles}, nil
	case KindCylinder, KindWireCylinder:
		if s.Slices < 3 || s.Stacks < 1 {
			return Mesh{}, fmt.Errorf("cylinder needs at least 3 slices and 1 stack, got %d/%d", s.Slices, s.Stacks)
		}
		if s.Kind == KindWireCylinder {
			return Mesh{Data: wireCylinder(s.Base, s.Top, s.Height, s.Slices, s.Stacks), Primitive: Lines}, nil
		}
		return Mesh{Data: cylinder(s.Base, s.Top, s.Height, s.Slices, s.Stacks), Primitive: Triangles}, nil
	case KindPlane:
		return Mesh{Data: plane(), Primitive: Triangles}, nil
	case KindFloor:
		return Mesh{Data: floor(), Primitive: Triangles}, nil
	}
	return Mesh{}, fmt.Errorf("unknown shape kind %d", s.Kind)
}

type vertex struct {
	p, n [3]float32
	uv   [2]float32
}

func appendVertex(dst []float32, v vertex) []float32 {
	return append(dst, v.p[0], v.p[1], v.p[2], v.n[0], v.n[1], v.n[2], v.uv[0], v.uv[1])
}

// quad appends two CCW triangles a-b-c, a-c-d.
func quad(dst []float32, a, b, c, d vertex) []float32 {
	for _, v := range []vertex{a, b, c, a, c, d} {
		dst = appendVertex(dst, v)
	}
	return dst
}

// cube is a unit cube centered at the origin, like glutSolidCube(1).
func cube() []float32 {
	type face struct {
		n      [3]float32
		corner [4][3]float32
	}
	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{-.5, -.5, .5}, {.5, -.5, .5}, {.5, .5, .5}, {-.5, .5, .5}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{.5, -.5, -.5}, {-.5, -.5, -.5}, {-.5, .5, -.5}, {.5, .5, -.5}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-.5, -.5, -.5}, {-.5, -.5, .5}, {-.5, .5, .5}, {-.5, .5, -.5}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{.5, -.5, .5}, {.5, -.5, -.5}, {.5, .5, -.5}, {.5, .5, .5}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-.5, .5, .5}, {.5, .5, .5}, {.5, .5, -.5}, {-.5, .5, -.5}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-.5, -.5, -.5}, {.5, -.5, -.5}, {.5, -.5, .5}, {-.5, -.5, .5}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	data := make([]float32, 0, 36*Stride)
	for _, f := range faces {
		var v [4]vertex
		for i := range v {
			v[i] = vertex{p: f.corner[i], n: f.n, uv: uvs[i]}
		}
		data = quad(data, v[0], v[1], v[2], v[3])
	}
	return data
}

// wireCube is the 12 edges of the unit cube as a line list.
func wireCube() []float32 {
	edges := [][2][3]float32{
		{{-.5, -.5, .5}, {.5, -.5, .5}}, {{.5, -.5, .5}, {.5, .5, .5}},
		{{.5, .5, .5}, {-.5, .5, .5}}, {{-.5, .5, .5}, {-.5, -.5, .5}},
		{{-.5, -.5, -.5}, {.5, -.5, -.5}}, {{.5, -.5, -.5}, {.5, .5, -.5}},
		{{.5, .5, -.5}, {-.5, .5, -.5}}, {{-.5, .5, -.5}, {-.5, -.5, -.5}},
		{{-.5, -.5, .5}, {-.5, -.5, -.5}}, {{.5, -.5, .5}, {.5, -.5, -.5}},
		{{.5, .5, .5}, {.5, .5, -.5}}, {{-.5, .5, .5}, {-.5, .5, -.5}},
	}
	data := make([]float32, 0, 24*Stride)
	for _, e := range edges {
		data = appendVertex(data, vertex{p: e[0]})
		data = appendVertex(data, vertex{p: e[1]})
	}
	return data
}

func sphere(slices, stacks int) []float32 {
	at := func(i, j int) vertex {
		theta := float32(j) / float32(slices) * 2 * math32.Pi
		phi := float32(i) / float32(stacks) * math32.Pi
		n := [3]float32{
			math32.Sin(phi) * math32.Sin(theta),
			math32.Cos(phi),
			math32.Sin(phi) * math32.Cos(theta),
		}
		return vertex{p: n, n: n, uv: [2]float32{float32(j) / float32(slices), 1 - float32(i)/float32(stacks)}}
	}
	data := make([]float32, 0, slices*stacks*6*Stride)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			data = quad(data, at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1))
		}
	}
	return data
}

// cylinderVertex returns the point on the side of a (possibly tapered) cylinder.
func cylinderVertex(base, top, height float32, slices, stacks, i, j int) vertex {
	t := float32(i) / float32(stacks)
	r := base + (top-base)*t
	theta := float32(j) / float32(slices) * 2 * math32.Pi
	sin, cos := math32.Sin(theta), math32.Cos(theta)
	// Side normal tilts by the taper slope.
	slope := (base - top) / height
	n := [3]float32{sin, cos, slope}
	l := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	return vertex{
		p:  [3]float32{r * sin, r * cos, height * t},
		n:  [3]float32{n[0] / l, n[1] / l, n[2] / l},
		uv: [2]float32{float32(j) / float32(slices), t},
	}
}

func cylinder(base, top, height float32, slices, stacks int) []float32 {
	data := make([]float32, 0, slices*stacks*6*Stride)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			data = quad(data,
				cylinderVertex(base, top, height, slices, stacks, i, j),
				cylinderVertex(base, top, height, slices, stacks, i, j+1),
				cylinderVertex(base, top, height, slices, stacks, i+1, j+1),
				cylinderVertex(base, top, height, slices, stacks, i+1, j),
			)
		}
	}
	return data
}

// wireCylinder draws the rings and the slice lines of a cylinder.
func wireCylinder(base, top, height float32, slices, stacks int) []float32 {
	data := make([]float32, 0, (stacks+1)*slices*2*Stride+slices*stacks*2*Stride)
	for i := 0; i <= stacks; i++ {
		for j := 0; j < slices; j++ {
			data = appendVertex(data, cylinderVertex(base, top, height, slices, stacks, i, j))
			data = appendVertex(data, cylinderVertex(base, top, height, slices, stacks, i, j+1))
		}
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			data = appendVertex(data, cylinderVertex(base, top, height, slices, stacks, i, j))
			data = appendVertex(data, cylinderVertex(base, top, height, slices, stacks, i+1, j))
		}
	}
	return data
}

// plane is a unit wall: x in [-0.5,0.5], y in [0,1], facing +Z.
// Texture coordinates run to 2 so a repeating texture tiles twice.
func plane() []float32 {
	n := [3]float32{0, 0, 1}
	return quad(nil,
		vertex{p: [3]float32{-.5, 0, 0}, n: n, uv: [2]float32{0, 0}},
		vertex{p: [3]float32{.5, 0, 0}, n: n, uv: [2]float32{2, 0}},
		vertex{p: [3]float32{.5, 1, 0}, n: n, uv: [2]float32{2, 2}},
		vertex{p: [3]float32{-.5, 1, 0}, n: n, uv: [2]float32{0, 2}},
	)
}

// floor is a unit square on y=0 centered at the origin, facing +Y.
func floor() []float32 {
	n := [3]float32{0, 1, 0}
	return quad(nil,
		vertex{p: [3]float32{.5, 0, .5}, n: n, uv: [2]float32{0, 0}},
		vertex{p: [3]float32{.5, 0, -.5}, n: n, uv: [2]float32{0, 1}},
		vertex{p: [3]float32{-.5, 0, -.5}, n: n, uv: [2]float32{1, 1}},
		vertex{p: [3]float32{-.5, 0, .5}, n: n, uv: [2]float32{1, 0}},
	)
}

// Vertices packs bare positions into a mesh with zero normals and uvs.
func Vertices(prim Primitive, points [][3]float32) Mesh {
	data := make([]float32, 0, len(points)*Stride)
	for _, p := range points {
		data = appendVertex(data, vertex{p: p})
	}
	return Mesh{Data: data, Primitive: prim}
}
