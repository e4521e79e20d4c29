package graphics

import (
	"glscenes/internal/graphics/geometry"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLMode maps a primitive to its GL draw mode.
func GLMode(p geometry.Primitive) uint32 {
	switch p {
	case geometry.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case geometry.TriangleFan:
		return gl.TRIANGLE_FAN
	case geometry.Lines:
		return gl.LINES
	case geometry.LineStrip:
		return gl.LINE_STRIP
	case geometry.LineLoop:
		return gl.LINE_LOOP
	case geometry.Points:
		return gl.POINTS
	}
	return gl.TRIANGLES
}

// GPUMesh is an uploaded mesh using the position/normal/uv layout.
type GPUMesh struct {
	VAO   uint32
	VBO   uint32
	Count int32
	Mode  uint32
}

// Draw issues the draw call for the whole mesh.
func (m *GPUMesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(m.Mode, 0, m.Count)
}

// Delete releases the buffers.
func (m *GPUMesh) Delete() {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		m.VAO = 0
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
		m.VBO = 0
	}
}

func newGPUMesh(usage uint32) *GPUMesh {
	m := &GPUMesh{}
	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, 0, nil, usage)

	stride := int32(geometry.Stride * 4)
	// position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	// normal
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	// uv
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	return m
}

func (m *GPUMesh) upload(mesh geometry.Mesh, usage uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	if len(mesh.Data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Data)*4, gl.Ptr(mesh.Data), usage)
	}
	m.Count = int32(mesh.VertexCount())
	m.Mode = GLMode(mesh.Primitive)
}

// MeshCache uploads each distinct shape once and keeps it for the life of the renderer.
type MeshCache struct {
	meshes map[geometry.Shape]*GPUMesh
	stream *GPUMesh
}

// NewMeshCache creates an empty cache.
func NewMeshCache() *MeshCache {
	return &MeshCache{meshes: make(map[geometry.Shape]*GPUMesh)}
}

// Get returns the uploaded mesh for shape, building it on first use.
func (c *MeshCache) Get(shape geometry.Shape) (*GPUMesh, error) {
	if m, ok := c.meshes[shape]; ok {
		return m, nil
	}
	data, err := geometry.Build(shape)
	if err != nil {
		return nil, err
	}
	m := newGPUMesh(gl.STATIC_DRAW)
	m.upload(data, gl.STATIC_DRAW)
	c.meshes[shape] = m
	return m, nil
}

// Stream uploads ad-hoc vertices into a shared dynamic buffer and returns it.
// The result is only valid until the next call.
func (c *MeshCache) Stream(mesh geometry.Mesh) *GPUMesh {
	if c.stream == nil {
		c.stream = newGPUMesh(gl.DYNAMIC_DRAW)
	}
	c.stream.upload(mesh, gl.DYNAMIC_DRAW)
	return c.stream
}

// Len returns the number of cached shapes.
func (c *MeshCache) Len() int { return len(c.meshes) }

// Dispose deletes every uploaded mesh.
func (c *MeshCache) Dispose() {
	for k, m := range c.meshes {
		m.Delete()
		delete(c.meshes, k)
	}
	if c.stream != nil {
		c.stream.Delete()
		c.stream = nil
	}
}
