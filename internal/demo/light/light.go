// Package light is the lighting demo: a walled room with a checkerboard floor,
// a table with a lamp and dice, two bouncing balls and five lights that can be
// switched on and off from the keyboard.
package light

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
	RoomSize = 30

	BallLo   = -4
	BallHi   = 2.8
	BallStep = 0.01
	BallY    = 3.2

	DiceStep  = 1
	DiceTicks = 300

	ColoredCutoff  = 45
	HeadlampCutoff = 30
)

// Light slots.
const (
	SlotBlue = iota
	SlotRed
	SlotGreen
	SlotLamp
	SlotHeadlamp
)

// Help is shown on the overlay and logged when H is pressed.
var Help = []string{
	"Esc quit   Space spin   WASD move   Q/E up/down   L main lights",
	"1 blue  2 red  3 green cones   4 lamp   5 headlamp",
	"-/+ light height   7 roll dice   8 tan ball   9 silver ball",
	"Left/Right spin speed   H hide help",
}

var (
	coloredDiffuse   = mgl32.Vec4{0.4, 0.4, 0.6, 1}
	coloredSpecular  = mgl32.Vec4{0, 0, 0.8, 1}
	coloredDirection = mgl32.Vec3{1, -1, 1}

	lampPosition = mgl32.Vec3{-0.7, 2.5, 0.8}
	lampMarker   = geometry.Sphere(20, 2)

	ballShape = geometry.Sphere(20, 20)
)

// Demo is the lighting scene and everything the keyboard can change in it.
type Demo struct {
	State scene.State

	// Blue, Red and Green switch the cone of the matching colored light.
	Blue, Red, Green bool
	Lamp             bool
	Headlamp         bool

	Tan, Silver              anim.Bouncer
	TanMoving, SilverMoving bool
	Dice                     anim.Countdown

	cam  *camera.Camera
	tex  demo.Textures
	done bool
}

// New creates the demo in its starting state.
func New(cam *camera.Camera, tex demo.Textures) *Demo {
	return &Demo{
		State:  scene.New(),
		Blue:   true,
		Red:    true,
		Green:  true,
		Lamp:   true,
		Tan:    anim.NewBouncer(BallHi, BallStep, BallLo, BallHi),
		Silver: anim.NewBouncer(BallLo, BallStep, BallLo, BallHi),
		Dice:   anim.Countdown{Step: DiceStep, Ticks: DiceTicks},
		cam:    cam,
		tex:    tex,
	}
}

// Camera returns the demo camera.
func (d *Demo) Camera() *camera.Camera { return d.cam }

// Done reports whether the quit fade has finished.
func (d *Demo) Done() bool { return d.done }

// Bind installs the lighting demo key map.
func (d *Demo) Bind(im *input.InputManager) {
	demo.BindCommon(im)
	im.BindChar('1', input.ActionLight1)
	im.BindChar('2', input.ActionLight2)
	im.BindChar('3', input.ActionLight3)
	im.BindChar('4', input.ActionLight4)
	im.BindChar('5', input.ActionLight5)
	im.BindChar('7', input.ActionRollDice)
	im.BindChar('8', input.ActionToggleTanBall)
	im.BindChar('9', input.ActionToggleSilverBall)
}

// HandleInput applies this frame's actions.
func (d *Demo) HandleInput(im *input.InputManager) {
	demo.DriveCamera(im, d.cam)
	demo.DriveState(im, &d.State, Help)

	demo.Toggled(im, input.ActionLight1, &d.Blue)
	demo.Toggled(im, input.ActionLight2, &d.Red)
	demo.Toggled(im, input.ActionLight3, &d.Green)
	demo.Toggled(im, input.ActionLight4, &d.Lamp)
	demo.Toggled(im, input.ActionLight5, &d.Headlamp)
	demo.Toggled(im, input.ActionToggleTanBall, &d.TanMoving)
	demo.Toggled(im, input.ActionToggleSilverBall, &d.SilverMoving)
	for range im.Pressed(input.ActionRollDice) {
		d.Dice.Toggle()
	}
}

// Tick advances the animations by one timer tick.
func (d *Demo) Tick() {
	if d.State.Advance() {
		d.done = true
		return
	}
	if d.TanMoving {
		d.Tan.Advance()
	}
	if d.SilverMoving {
		d.Silver.Advance()
	}
	d.Dice.Advance()
}

// Resize follows the window aspect ratio.
func (d *Demo) Resize(width, height int) { d.cam.SetViewport(width, height) }

// Overlay returns the help text and a status line while help is visible.
func (d *Demo) Overlay() []string {
	if !d.State.HelpVisible {
		return nil
	}
	status := fmt.Sprintf("brightness %.2f  light height %.2f  spin step %.3f",
		d.State.Brightness(), d.State.LightHeight.Value, d.State.Spin.Step)
	return append(append([]string(nil), Help...), status)
}

// Build records the frame.
func (d *Demo) Build(l *displaylist.List) {
	st := &d.State
	b := st.Brightness()

	l.Begin(d.cam.View())
	l.ClearColor = mgl32.Vec4{0, 0, 0, 1}
	l.GlobalAmbient = mgl32.Vec4{0, 0, 0, 1}
	l.Smooth = st.Smooth
	l.LocalViewer = st.LocalViewer
	l.TwoSide = true

	h := st.LightHeight.Value
	if st.LightsOn {
		d.colored(l, SlotBlue, mgl32.Vec3{3, h, 1}, mgl32.Vec4{0, 0, 1, 1}, 1, d.Blue, mgl32.Vec3{0, 0, b})
		d.colored(l, SlotRed, mgl32.Vec3{4, h, 2}, mgl32.Vec4{1, 0, 0, 1}, 2, d.Red, mgl32.Vec3{b, 0, 0})
		d.colored(l, SlotGreen, mgl32.Vec3{5, h, 3}, mgl32.Vec4{0, 1, 0, 1}, 3, d.Green, mgl32.Vec3{0, b, 0})
	} else {
		for slot := SlotBlue; slot <= SlotGreen; slot++ {
			l.DisableLight(slot)
		}
	}
	if d.Lamp {
		lamp := displaylist.PointLight(lampPosition.Vec4(1))
		lamp.Ambient = mgl32.Vec4{1, 1, 1, 1}
		lamp.ConstantAttenuation = 4
		lamp = lamp.Spot(true, ColoredCutoff, 0, mgl32.Vec3{0, -1, 0}).Scaled(b)
		l.PlaceLight(SlotLamp, lamp)
		demo.Marker(l, lampPosition, 0.17, mgl32.Vec3{b, b, b}, lampMarker)
	} else {
		l.DisableLight(SlotLamp)
	}
	if d.Headlamp {
		head := displaylist.PointLight(mgl32.Vec4{0, 0, 0, 1})
		head.Ambient = mgl32.Vec4{1, 1, 1, 1}
		head.ConstantAttenuation = 3
		head = head.Spot(true, HeadlampCutoff, 0, mgl32.Vec3{0, 0, -1}).Scaled(b)
		l.PlaceEyeLight(SlotHeadlamp, head)
		demo.Marker(l, mgl32.Vec3{1, h, 2}, 0.5, mgl32.Vec3{b, b, b}, demo.MarkerSphere)
	} else {
		l.DisableLight(SlotHeadlamp)
	}

	l.Rotate(st.Spin.Angle, 0, 1, 0)
	d.objects(l)
}

func (d *Demo) colored(l *displaylist.List, slot int, pos mgl32.Vec3, ambient mgl32.Vec4, attenuation float32, cone bool, marker mgl32.Vec3) {
	li := displaylist.PointLight(pos.Vec4(1))
	li.Ambient = ambient
	li.Diffuse = coloredDiffuse
	li.Specular = coloredSpecular
	li.ConstantAttenuation = attenuation
	li = li.Spot(cone, ColoredCutoff, 0, coloredDirection).Scaled(d.State.Brightness())
	l.PlaceLight(slot, li)
	demo.Marker(l, pos, 0.5, marker, demo.MarkerSphere)
}

func (d *Demo) objects(l *displaylist.List) {
	l.Push()
	defer l.Pop()

	l.SetMaterial(displaylist.Copper)
	ball(l, mgl32.Vec3{d.Tan.Value, BallY, 0})
	l.SetMaterial(displaylist.Pewter)
	ball(l, mgl32.Vec3{d.Silver.Value, BallY, 1.5})

	demo.Floor(l, RoomSize, RoomSize, d.tex.Checker)
	demo.Wall(l, 90, RoomSize/2, RoomSize, RoomSize, d.tex.Brick)
	demo.Wall(l, 90, -RoomSize/2, RoomSize, RoomSize, d.tex.Brick)
	demo.Wall(l, 180, RoomSize/2, RoomSize, RoomSize, d.tex.Brick)
	demo.Wall(l, 180, -RoomSize/2, RoomSize, RoomSize, d.tex.Brick)

	// table top
	l.Push()
	l.Translate(0, 1, -2.5)
	l.Rotate(90, 1, 0, 0)
	demo.Sheet(l, 10, 5, d.tex.Wood)
	l.Pop()

	demo.Box(l, mgl32.Vec3{0, 0.4, 0}, mgl32.Vec3{5, 1, 2.5})
	demo.Box(l, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 1})
	demo.Box(l, mgl32.Vec3{-1, 1, 0}, mgl32.Vec3{1, 1, 1})

	// lamp post and arm
	demo.Box(l, mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0.1, 1, 0.1})
	l.Push()
	l.Translate(-0.45, 2.5, 0)
	l.Rotate(90, 0, 0, 1)
	l.Scale(0.1, 1, 0.1)
	l.Draw(geometry.Cube)
	l.Pop()

	d.die(l, mgl32.Vec3{1, 1.1, 1})
	d.die(l, mgl32.Vec3{1.1, 1.1, 1.2})
}

func ball(l *displaylist.List, pos mgl32.Vec3) {
	l.Push()
	l.Translate(pos[0], pos[1], pos[2])
	l.Scale(0.2, 0.2, 0.2)
	l.Draw(ballShape)
	l.Pop()
}

func (d *Demo) die(l *displaylist.List, pos mgl32.Vec3) {
	l.Push()
	l.Translate(pos[0], pos[1], pos[2])
	l.Rotate(d.Dice.Angle, 1, 1, 0)
	l.Scale(0.1, 0.1, 0.1)
	l.Draw(geometry.Cube)
	l.Pop()
}
