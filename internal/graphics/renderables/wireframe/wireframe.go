package wireframe

import (
	"log/slog"
	"path/filepath"

	"glscenes/internal/graphics"
	"glscenes/internal/graphics/displaylist"
	"glscenes/internal/graphics/geometry"
	renderer "glscenes/internal/graphics/renderer"
	"glscenes/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// PointSize is the diameter in pixels of point primitives.
const PointSize = 5

// Wireframe draws line and point primitives in a flat color
type Wireframe struct {
	shadersDir string
	shader     *graphics.Shader
	failed     map[geometry.Shape]bool
}

// NewWireframe creates a new wireframe renderable; shaders are read from shadersDir/wireframe.
func NewWireframe(shadersDir string) *Wireframe {
	return &Wireframe{
		shadersDir: filepath.Join(shadersDir, "wireframe"),
		failed:     make(map[geometry.Shape]bool),
	}
}

// Init initializes the wireframe rendering system
func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader(
		filepath.Join(w.shadersDir, "wireframe.vert"),
		filepath.Join(w.shadersDir, "wireframe.frag"),
	)
	return err
}

// Shaders returns the program for hot reload.
func (w *Wireframe) Shaders() []*graphics.Shader {
	return []*graphics.Shader{w.shader}
}

// Render draws every wire command of the list
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderWireframe")()

	w.shader.Use()
	w.shader.SetMatrix4("proj", ctx.Proj)
	w.shader.SetMatrix4("view", ctx.View)
	w.shader.SetFloat("pointSize", PointSize)

	gl.LineWidth(1.0)
	for i := range ctx.List.Commands {
		cmd := &ctx.List.Commands[i]
		if !cmd.Wire() {
			continue
		}
		mesh := w.mesh(ctx.Meshes, cmd)
		if mesh == nil {
			continue
		}
		w.shader.SetMatrix4("model", cmd.Model)
		w.shader.SetVector4("color", cmd.Color)
		mesh.Draw()
	}
	gl.BindVertexArray(0)
}

func (w *Wireframe) mesh(meshes *graphics.MeshCache, cmd *displaylist.Command) *graphics.GPUMesh {
	if cmd.Custom != nil {
		return meshes.Stream(*cmd.Custom)
	}
	if w.failed[cmd.Shape] {
		return nil
	}
	mesh, err := meshes.Get(cmd.Shape)
	if err != nil {
		w.failed[cmd.Shape] = true
		slog.Error("skipping wire shape", "kind", cmd.Shape.Kind, "err", err)
		return nil
	}
	return mesh
}

// SetViewport is a no-op; lines are drawn in scene space.
func (w *Wireframe) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	if w.shader != nil {
		w.shader.Delete()
	}
}
