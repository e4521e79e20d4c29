package renderer

import (
	"glscenes/internal/camera"
	"glscenes/internal/graphics"
	"glscenes/internal/graphics/displaylist"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *camera.Camera
	List   *displaylist.List
	Meshes *graphics.MeshCache
	View   mgl32.Mat4
	Proj   mgl32.Mat4

	Width   int
	Height  int
	Overlay []string
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

// Reloadable is implemented by renderables whose shaders can be rebuilt from disk.
type Reloadable interface {
	Shaders() []*graphics.Shader
}
