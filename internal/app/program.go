package app

import (
	"glscenes/internal/camera"
	"glscenes/internal/config"
	"glscenes/internal/demo"

	"github.com/go-gl/mathgl/mgl32"
)

// Program describes one demo executable.
type Program struct {
	Name string
	// Textured programs get the checkerboard, brick and wood textures.
	Textured bool
	New      func(s config.Settings, tex demo.Textures) (demo.Demo, error)
}

// NewCamera builds the perspective camera described by s.
func NewCamera(s config.Settings) (*camera.Camera, error) {
	cs := s.Camera
	lens := camera.Lens{
		FOV:    cs.FOV,
		Aspect: float32(s.Window.Width) / float32(s.Window.Height),
		Near:   cs.Near,
		Far:    cs.Far,
	}
	cam, err := camera.New(lens, mgl32.Vec3(cs.Eye), cs.LookAngle)
	if err != nil {
		return nil, err
	}
	if cs.TurnStep > 0 {
		cam.TurnStep = cs.TurnStep
	}
	if cs.SlideStep > 0 {
		cam.SlideStep = cs.SlideStep
	}
	return cam, nil
}
