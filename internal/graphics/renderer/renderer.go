package renderer

import (
	"log/slog"

	"glscenes/internal/camera"
	"glscenes/internal/graphics"
	"glscenes/internal/graphics/displaylist"
	"glscenes/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	meshes      *graphics.MeshCache

	width  int
	height int
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	renderer := &Renderer{
		renderables: rs,
		meshes:      graphics.NewMeshCache(),
	}

	// Initialize all renderables
	for i, r := range rs {
		if err := r.Init(); err != nil {
			// Dispose what was already initialized
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}

	return renderer, nil
}

// Render replays one frame's display list through every renderable
func (r *Renderer) Render(cam *camera.Camera, list *displaylist.List, overlay []string) {
	defer profiling.Track("renderer.Render")()

	c := list.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if list.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	ctx := RenderContext{
		Camera:  cam,
		List:    list,
		Meshes:  r.meshes,
		View:    list.View,
		Proj:    cam.Projection(),
		Width:   r.width,
		Height:  r.height,
		Overlay: overlay,
	}

	// Render all features
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Reload rebuilds every hot-reloadable shader. A shader that fails to build
// keeps its previous program.
func (r *Renderer) Reload() {
	for _, renderable := range r.renderables {
		rl, ok := renderable.(Reloadable)
		if !ok {
			continue
		}
		for _, s := range rl.Shaders() {
			vert, frag := s.Paths()
			if err := s.Reload(); err != nil {
				slog.Error("shader reload failed, keeping previous program", "vert", vert, "frag", frag, "err", err)
				continue
			}
			slog.Info("shader reloaded", "vert", vert, "frag", frag)
		}
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.meshes.Dispose()
}

// UpdateViewport resizes the GL viewport and tells every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
