// Package shapes is the quadrics demo: a small three-walled room with a
// selectable floor, a wire box, an optional wire car between two wire cones,
// and one main light that can be dimmed, raised or turned into a spotlight.
package shapes

import (
	"fmt"

	"glscenes/internal/anim"
	"glscenes/internal/camera"
	"glscenes/internal/demo"
	"glscenes/internal/graphics/displaylist"
	"glscenes/internal/graphics/geometry"
	"glscenes/internal/input"
	"glscenes/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	RoomSize = 10
	// Window size assumed until the first Resize.
	DefaultSize = 1000

	DimFactor  = 0.9
	SpotCutoff = 45

	CarLo     = -5
	CarHi     = 5
	CarStep   = 0.05
	WheelStep = -1.8

	// The orthographic volume is the window size divided by OrthoScale.
	OrthoScale = 40
	OrthoDepth = 100
)

// FloorOption selects what the floor is covered with.
type FloorOption int

const (
	FloorCopper FloorOption = iota + 1
	FloorChecker
	FloorWood
	FloorBrick
)

var floorNames = map[FloorOption]string{
	FloorCopper:  "copper",
	FloorChecker: "checkerboard",
	FloorWood:    "wood",
	FloorBrick:   "brick",
}

func (f FloorOption) String() string { return floorNames[f] }

// Next cycles forward through 1..4.
func (f FloorOption) Next() FloorOption {
	if f >= FloorBrick {
		return FloorCopper
	}
	return f + 1
}

// Prev cycles backward through 4..1.
func (f FloorOption) Prev() FloorOption {
	if f <= FloorCopper {
		return FloorBrick
	}
	return f - 1
}

// Help is shown on the overlay and logged when H is pressed.
var Help = []string{
	"Esc quit   Space spin   WASD move   Q/E up/down   L light",
	"1 smooth/flat   2 spotlight   3 local viewer   4/5 dimmer/brighter",
	"6/7 floor   -/+ light height   P perspective/orthographic",
	"Left/Right spin speed   H hide help",
}

var (
	mainDirection = mgl32.Vec3{1, -1, 1}
	wireColor     = mgl32.Vec3{0.2, 0.2, 0.2}
	coneShape     = geometry.WireCylinder(1, 0.25, 5, 10, 10)
	wheelShape    = geometry.WireCylinder(0.5, 0.5, 0.5, 20, 5)
)

// Demo is the shapes scene and everything the keyboard can change in it.
type Demo struct {
	State scene.State

	Spotlight bool
	Floor     FloorOption
	ShowCar   bool
	Car       anim.Bouncer
	Wheel     anim.Spinner

	cam           *camera.Camera
	tex           demo.Textures
	width, height int
	done          bool
}

// New creates the demo in its starting state. showCar adds the wire car and cones.
func New(cam *camera.Camera, tex demo.Textures, showCar bool) *Demo {
	return &Demo{
		State:     scene.New(),
		Spotlight: true,
		Floor:     FloorChecker,
		ShowCar:   showCar,
		Car:       anim.NewBouncer(0, CarStep, CarLo, CarHi),
		Wheel:     anim.Spinner{Step: WheelStep},
		cam:       cam,
		tex:       tex,
		width:     DefaultSize,
		height:    DefaultSize,
	}
}

// Camera returns the demo camera.
func (d *Demo) Camera() *camera.Camera { return d.cam }

// Done reports whether the quit fade has finished.
func (d *Demo) Done() bool { return d.done }

// Bind installs the shapes demo key map.
func (d *Demo) Bind(im *input.InputManager) {
	demo.BindCommon(im)
	im.BindChar('1', input.ActionToggleSmooth)
	im.BindChar('2', input.ActionToggleSpotlight)
	im.BindChar('3', input.ActionToggleLocalViewer)
	im.BindChar('4', input.ActionDimmer)
	im.BindChar('5', input.ActionBrighter)
	im.BindChar('6', input.ActionFloorNext)
	im.BindChar('7', input.ActionFloorPrev)
	demo.BindChar(im, 'p', input.ActionToggleProjection)
}

// HandleInput applies this frame's actions.
func (d *Demo) HandleInput(im *input.InputManager) {
	st := &d.State
	demo.DriveCamera(im, d.cam)
	demo.DriveState(im, st, Help)

	demo.Toggled(im, input.ActionToggleSmooth, &st.Smooth)
	demo.Toggled(im, input.ActionToggleSpotlight, &d.Spotlight)
	demo.Toggled(im, input.ActionToggleLocalViewer, &st.LocalViewer)
	for range im.Pressed(input.ActionDimmer) {
		st.SetBrightness(st.Brightness() * DimFactor)
	}
	for range im.Pressed(input.ActionBrighter) {
		st.SetBrightness(st.Brightness() / DimFactor)
	}
	for range im.Pressed(input.ActionFloorNext) {
		d.Floor = d.Floor.Next()
	}
	for range im.Pressed(input.ActionFloorPrev) {
		d.Floor = d.Floor.Prev()
	}
	if im.Pressed(input.ActionToggleProjection)%2 == 1 {
		d.toggleProjection()
	}
}

func (d *Demo) orthoBox() camera.Box {
	w := float32(d.width) / OrthoScale
	h := float32(d.height) / OrthoScale
	return camera.Box{Left: -w, Right: w, Bottom: -h, Top: h, Near: -OrthoDepth, Far: OrthoDepth}
}

func (d *Demo) toggleProjection() {
	if d.cam.Orthographic() {
		d.cam.SetPerspective()
		return
	}
	d.cam.SetOrtho(d.orthoBox())
}

// Tick advances the animations by one timer tick.
func (d *Demo) Tick() {
	if d.State.Advance() {
		d.done = true
		return
	}
	if d.State.Animate && d.ShowCar {
		d.Car.Advance()
		d.Wheel.Advance()
	}
}

// Resize follows the window size, for both the aspect ratio and the orthographic volume.
func (d *Demo) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.width, d.height = width, height
	d.cam.SetViewport(width, height)
	if d.cam.Orthographic() {
		d.cam.SetOrtho(d.orthoBox())
	}
}

// Overlay returns the help text and a status line while help is visible.
func (d *Demo) Overlay() []string {
	if !d.State.HelpVisible {
		return nil
	}
	projection := "perspective"
	if d.cam.Orthographic() {
		projection = "orthographic"
	}
	status := fmt.Sprintf("floor %s  brightness %.2f  light height %.2f  %s",
		d.Floor, d.State.Brightness(), d.State.LightHeight.Value, projection)
	return append(append([]string(nil), Help...), status)
}

// Build records the frame.
func (d *Demo) Build(l *displaylist.List) {
	st := &d.State
	b := st.Brightness()

	l.Begin(d.cam.View())
	l.ClearColor = mgl32.Vec4{1, 1, 1, 1}
	l.GlobalAmbient = mgl32.Vec4{0, 0, 0, 1}
	l.Smooth = st.Smooth
	l.LocalViewer = st.LocalViewer
	l.TwoSide = true

	if st.LightsOn {
		pos := mgl32.Vec3{3, st.LightHeight.Value, 1}
		li := displaylist.PointLight(pos.Vec4(1))
		li.Ambient = mgl32.Vec4{1, 1, 1, 1}
		li = li.Spot(d.Spotlight, SpotCutoff, 0, mainDirection).Scaled(b)
		l.PlaceLight(0, li)
		demo.Marker(l, pos, 0.5, mgl32.Vec3{0, 0, b}, demo.MarkerSphere)
	} else {
		l.DisableLight(0)
	}

	l.Rotate(st.Spin.Angle, 0, 1, 0)

	l.Push()
	d.floor(l)
	demo.Wall(l, 90, RoomSize/2, RoomSize, RoomSize, d.tex.Brick)
	demo.Wall(l, 90, -RoomSize/2, RoomSize, RoomSize, d.tex.Brick)
	demo.Wall(l, 180, RoomSize/2, RoomSize, RoomSize, d.tex.Brick)

	l.SetColor(wireColor[0], wireColor[1], wireColor[2])
	l.Push()
	l.Translate(0, 1, 0)
	l.Scale(3, 0.5, 2)
	l.Draw(geometry.WireCube)
	l.Pop()

	if d.ShowCar {
		d.car(l)
	}
	l.Pop()
}

func (d *Demo) floor(l *displaylist.List) {
	switch d.Floor {
	case FloorCopper:
		l.SetMaterial(displaylist.Copper)
		demo.Floor(l, RoomSize, RoomSize, 0)
		l.SetMaterial(displaylist.DefaultMaterial)
	case FloorWood:
		demo.Floor(l, RoomSize, RoomSize, d.tex.Wood)
	case FloorBrick:
		demo.Floor(l, RoomSize, RoomSize, d.tex.Brick)
	default:
		demo.Floor(l, RoomSize, RoomSize, d.tex.Checker)
	}
}

// car draws two cones and a boxy car whose wheels turn as it moves.
func (d *Demo) car(l *displaylist.List) {
	for _, z := range []float32{-4, 4} {
		l.Push()
		l.Translate(0, 0, z)
		l.Rotate(-90, 1, 0, 0)
		l.Draw(coneShape)
		l.Pop()
	}

	x := d.Car.Value
	l.Push()
	l.Translate(x, 1, 0)
	l.Scale(5, 1, 3)
	l.Draw(geometry.WireCube)
	l.Pop()

	l.Push()
	l.Translate(x+1.5, 2, 0)
	l.Scale(1, 1, 3)
	l.Draw(geometry.WireCube)
	l.Pop()

	for _, w := range [][2]float32{{1.5, 1.5}, {1.5, -2}, {-1.5, 1.5}, {-1.5, -2}} {
		l.Push()
		l.Translate(x+w[0], 0.5, w[1])
		l.Rotate(d.Wheel.Angle, 0, 0, 1)
		l.Draw(wheelShape)
		l.Pop()
	}
}
