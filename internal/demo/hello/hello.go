// Package hello is the smallest demo: a red primitive on a white 2D canvas
// that spans 0..1 on both axes. Esc quits and every key press is logged.
package hello

import (
	"log/slog"

	"glscenes/internal/camera"
	"glscenes/internal/graphics/displaylist"
	"glscenes/internal/graphics/geometry"
	"glscenes/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Points are the vertices of the primitive, in order.
var Points = [][3]float32{
	{0.25, 0.75, 0},
	{0.25, 0.25, 0},
	{0.75, 0.25, 0},
	{0.75, 0.75, 0},
}

// Demo draws Points with one primitive mode.
type Demo struct {
	Primitive geometry.Primitive

	cam  *camera.Camera
	done bool
}

// New creates the demo for the given primitive mode.
func New(prim geometry.Primitive) *Demo {
	return &Demo{Primitive: prim, cam: camera.NewOrtho2D(0, 1, 0, 1)}
}

// Camera returns the fixed 2D camera.
func (d *Demo) Camera() *camera.Camera { return d.cam }

// Bind maps Esc to quit.
func (d *Demo) Bind(im *input.InputManager) {
	im.BindKey(glfw.KeyEscape, input.ActionQuit)
}

// HandleInput quits as soon as Esc arrives.
func (d *Demo) HandleInput(im *input.InputManager) {
	if im.Pressed(input.ActionQuit) > 0 {
		d.done = true
	}
}

// ObserveKey logs a key press and where the cursor was.
func (d *Demo) ObserveKey(name string, x, y float64) {
	slog.Info("key pressed", "key", name, "x", x, "y", y)
}

func (d *Demo) Tick()                   {}
func (d *Demo) Resize(width, height int) {}
func (d *Demo) Overlay() []string       { return nil }
func (d *Demo) Done() bool              { return d.done }

// Build records the red primitive.
func (d *Demo) Build(l *displaylist.List) {
	l.Begin(d.cam.View())
	l.ClearColor = mgl32.Vec4{1, 1, 1, 1}
	l.DepthTest = false
	l.SetColor(1, 0, 0)
	l.DrawVertices(geometry.Vertices(d.Primitive, Points))
}
