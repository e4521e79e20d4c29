// Package demo holds what the three demo programs share: the Demo contract the
// window shell drives, the common key bindings and the room pieces (walls,
// floor, light markers) the lit scenes are built from.
package demo

import (
	"glscenes/internal/camera"
	"glscenes/internal/graphics/displaylist"
	"glscenes/internal/input"
)

// Demo is one interactive scene. The shell calls HandleInput once per frame,
// Tick once per timer tick and Build before each render.
type Demo interface {
	Bind(im *input.InputManager)
	HandleInput(im *input.InputManager)
	Tick()
	Build(l *displaylist.List)
	Resize(width, height int)
	Camera() *camera.Camera
	// Overlay returns the lines to show on screen, or nil to hide the overlay.
	Overlay() []string
	Done() bool
}

// KeyObserver is implemented by demos that want every raw key press with the
// cursor position.
type KeyObserver interface {
	ObserveKey(name string, x, y float64)
}

// Textures are the GL texture names a lit scene draws with.
type Textures struct {
	Checker uint32
	Brick   uint32
	Wood    uint32
}
