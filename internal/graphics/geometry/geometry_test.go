package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVertexCounts(t *testing.T) {
	cases := []struct {
		shape Shape
		count int
		prim  Primitive
	}{
		{Cube, 36, Triangles},
		{WireCube, 24, Lines},
		{Plane, 6, Triangles},
		{Floor, 6, Triangles},
		{Sphere(20, 20), 20 * 20 * 6, Triangles},
		{Cylinder(1, 0.25, 5, 10, 10), 10 * 10 * 6, Triangles},
		{WireCylinder(0.5, 0.5, 0.5, 20, 5), (6*20 + 5*20) * 2, Lines},
	}
	for _, c := range cases {
		m, err := Build(c.shape)
		require.NoError(t, err, "%+v", c.shape)
		assert.Equal(t, c.count, m.VertexCount(), "%+v", c.shape)
		assert.Equal(t, c.prim, m.Primitive, "%+v", c.shape)
		assert.Zero(t, len(m.Data)%Stride)
	}
}

func TestBuildRejectsDegenerateShapes(t *testing.T) {
	_, err := Build(Sphere(2, 2))
	assert.Error(t, err)
	_, err = Build(Cylinder(1, 1, 1, 3, 0))
	assert.Error(t, err)
	_, err = Build(Shape{Kind: Kind(99)})
	assert.Error(t, err)
}

func TestCubeIsUnitAndCentered(t *testing.T) {
	m, err := Build(Cube)
	require.NoError(t, err)
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Data[i*Stride : i*Stride+3]
		for _, c := range v {
			assert.Equal(t, float32(0.5), math32.Abs(c))
		}
		n := m.Data[i*Stride+3 : i*Stride+6]
		assert.InDelta(t, 1, n[0]*n[0]+n[1]*n[1]+n[2]*n[2], 1e-6)
	}
}

func TestSphereNormalsAreUnit(t *testing.T) {
	m, err := Build(Sphere(12, 8))
	require.NoError(t, err)
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Data[i*Stride : i*Stride+3]
		assert.InDelta(t, 1, p[0]*p[0]+p[1]*p[1]+p[2]*p[2], 1e-5)
	}
}

func TestPlaneSpansWallExtent(t *testing.T) {
	m, err := Build(Plane)
	require.NoError(t, err)
	var maxU, maxY float32
	for i := 0; i < m.VertexCount(); i++ {
		maxY = math32.Max(maxY, m.Data[i*Stride+1])
		maxU = math32.Max(maxU, m.Data[i*Stride+6])
	}
	assert.Equal(t, float32(1), maxY)
	assert.Equal(t, float32(2), maxU)
}

func TestParsePrimitive(t *testing.T) {
	p, err := ParsePrimitive(" Line_Strip ")
	require.NoError(t, err)
	assert.Equal(t, LineStrip, p)
	assert.True(t, p.IsLine())
	assert.False(t, Triangles.IsLine())

	_, err = ParsePrimitive("quads")
	assert.Error(t, err)
}

func TestParsePrimitiveNames(t *testing.T) {
	want := map[string]Primitive{
		"triangles":      Triangles,
		"triangle_strip": TriangleStrip,
		"triangle_fan":   TriangleFan,
		"lines":          Lines,
		"line_strip":     LineStrip,
		"line_loop":      LineLoop,
		"points":         Points,
	}
	for name, prim := range want {
		got, err := ParsePrimitive(name)
		require.NoError(t, err, name)
		assert.Equal(t, prim, got, name)
	}
}

func TestVertices(t *testing.T) {
	m := Vertices(Triangles, [][3]float32{{0.25, 0.75, 0}, {0.25, 0.25, 0}, {0.75, 0.25, 0}})
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, float32(0.75), m.Data[Stride+Stride+0])
}
