package camera

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default movement steps per key press.
const (
	DefaultTurnStep  = 2.0
	DefaultSlideStep = 0.5
)

var ErrInvalidLens = errors.New("camera: invalid lens")

// Lens describes the perspective frustum. FOV is the vertical angle in degrees.
type Lens struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32
}

// Validate checks 0 < Near < Far, a positive FOV and a positive aspect ratio.
func (l Lens) Validate() error {
	if l.Near <= 0 || l.Far <= 0 || l.Near >= l.Far {
		return fmt.Errorf("%w: near=%v far=%v", ErrInvalidLens, l.Near, l.Far)
	}
	if l.FOV <= 0 || l.FOV >= 180 {
		return fmt.Errorf("%w: fov=%v", ErrInvalidLens, l.FOV)
	}
	if l.Aspect <= 0 {
		return fmt.Errorf("%w: aspect=%v", ErrInvalidLens, l.Aspect)
	}
	return nil
}

// Box is an orthographic view volume.
type Box struct {
	Left, Right, Bottom, Top, Near, Far float32
}

// Camera is an eye position plus a look angle about the world Y axis.
// A look angle of zero looks down -Z; positive angles turn left.
type Camera struct {
	Eye       mgl32.Vec3
	LookAngle float32
	Lens      Lens

	TurnStep  float32
	SlideStep float32

	ortho     Box
	useOrtho  bool
	fixedView bool
}

// New creates a perspective camera.
func New(lens Lens, eye mgl32.Vec3, lookAngle float32) (*Camera, error) {
	if err := lens.Validate(); err != nil {
		return nil, err
	}
	return &Camera{
		Eye:       eye,
		LookAngle: lookAngle,
		Lens:      lens,
		TurnStep:  DefaultTurnStep,
		SlideStep: DefaultSlideStep,
	}, nil
}

// NewOrtho2D creates a camera that maps the rectangle [left,right]x[bottom,top]
// straight onto the viewport, with an identity view transform.
func NewOrtho2D(left, right, bottom, top float32) *Camera {
	return &Camera{
		Lens:      Lens{FOV: 60, Aspect: 1, Near: 1, Far: 2},
		ortho:     Box{Left: left, Right: right, Bottom: bottom, Top: top, Near: -1, Far: 1},
		useOrtho:  true,
		fixedView: true,
	}
}

// Turn rotates the look direction by direction*TurnStep degrees.
func (c *Camera) Turn(direction float32) {
	c.LookAngle += direction * c.TurnStep
}

// Slide moves the eye along the camera axes: du to the right, dv up,
// dn backwards (away from the look direction). Each unit is SlideStep long.
func (c *Camera) Slide(du, dv, dn float32) {
	right := c.Right()
	back := c.Forward().Mul(-1)
	delta := right.Mul(du).Add(mgl32.Vec3{0, dv, 0}).Add(back.Mul(dn))
	c.Eye = c.Eye.Add(delta.Mul(c.SlideStep))
}

// Forward returns the unit look direction in the ground plane.
func (c *Camera) Forward() mgl32.Vec3 {
	rad := mgl32.DegToRad(c.LookAngle)
	return mgl32.Vec3{-math32.Sin(rad), 0, -math32.Cos(rad)}
}

// Right returns the unit vector pointing to the camera's right in the ground plane.
func (c *Camera) Right() mgl32.Vec3 {
	rad := mgl32.DegToRad(c.LookAngle)
	return mgl32.Vec3{math32.Cos(rad), 0, -math32.Sin(rad)}
}

// View returns the world-to-eye transform.
func (c *Camera) View() mgl32.Mat4 {
	if c.fixedView {
		return mgl32.Ident4()
	}
	return mgl32.LookAtV(c.Eye, c.Eye.Add(c.Forward()), mgl32.Vec3{0, 1, 0})
}

// Projection returns the eye-to-clip transform for the current mode.
func (c *Camera) Projection() mgl32.Mat4 {
	if c.useOrtho {
		b := c.ortho
		return mgl32.Ortho(b.Left, b.Right, b.Bottom, b.Top, b.Near, b.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Lens.FOV), c.Lens.Aspect, c.Lens.Near, c.Lens.Far)
}

// SetOrtho switches to an orthographic projection with the given volume.
func (c *Camera) SetOrtho(b Box) {
	c.ortho = b
	c.useOrtho = true
}

// SetPerspective switches back to the lens projection.
func (c *Camera) SetPerspective() {
	if c.fixedView {
		return
	}
	c.useOrtho = false
}

// Orthographic reports whether the orthographic projection is active.
func (c *Camera) Orthographic() bool { return c.useOrtho }

// SetViewport updates the aspect ratio after a resize. Degenerate sizes are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Lens.Aspect = float32(width) / float32(height)
}
