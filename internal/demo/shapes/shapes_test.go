package shapes

import (
	"testing"

	"glscenes/internal/camera"
	"glscenes/internal/demo"
	"glscenes/internal/graphics/displaylist"
	"glscenes/internal/graphics/geometry"
	"glscenes/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ demo.Demo = (*Demo)(nil)

func newDemo(t *testing.T, car bool) (*Demo, *input.InputManager) {
	t.Helper()
	cam, err := camera.New(camera.Lens{FOV: 60, Aspect: 1, Near: 0.01, Far: 1000}, mgl32.Vec3{0, 2, 30}, 0)
	require.NoError(t, err)
	d := New(cam, demo.Textures{Checker: 1, Brick: 2, Wood: 3}, car)
	im := input.NewInputManager()
	d.Bind(im)
	return d, im
}

func press(d *Demo, im *input.InputManager, chars ...rune) {
	for _, c := range chars {
		im.HandleCharEvent(c)
	}
	d.HandleInput(im)
	im.PostUpdate()
}

func floorTexture(l *displaylist.List) (uint32, bool) {
	for _, c := range l.Commands {
		if c.Shape == geometry.Floor {
			return c.Texture.ID, true
		}
	}
	return 0, false
}

func TestFloorOptionsCycle(t *testing.T) {
	assert.Equal(t, FloorCopper, FloorBrick.Next())
	assert.Equal(t, FloorBrick, FloorCopper.Prev())
	for f := FloorCopper; f <= FloorBrick; f++ {
		assert.Equal(t, f, f.Next().Prev())
	}
}

func TestFloorFollowsOption(t *testing.T) {
	d, im := newDemo(t, false)
	l := displaylist.New()

	want := map[FloorOption]uint32{FloorChecker: 1, FloorWood: 3, FloorBrick: 2, FloorCopper: 0}
	for range 4 {
		d.Build(l)
		id, ok := floorTexture(l)
		require.True(t, ok)
		assert.Equal(t, want[d.Floor], id, d.Floor.String())
		press(d, im, '6')
	}
	assert.Equal(t, FloorChecker, d.Floor)

	press(d, im, '7', '7')
	assert.Equal(t, FloorBrick, d.Floor)
}

func TestCopperFloorIsLit(t *testing.T) {
	d, _ := newDemo(t, false)
	d.Floor = FloorCopper
	l := displaylist.New()
	d.Build(l)
	for _, c := range l.Commands {
		if c.Shape == geometry.Floor {
			assert.Equal(t, displaylist.Copper, c.Material)
			assert.False(t, c.Unlit)
		}
	}
}

func TestBrightnessKeys(t *testing.T) {
	d, im := newDemo(t, false)
	press(d, im, '4', '4')
	assert.InDelta(t, 0.81, d.State.Brightness(), 1e-5)

	press(d, im, '5', '5', '5', '5')
	assert.Equal(t, float32(1), d.State.Brightness())

	l := displaylist.New()
	press(d, im, '4')
	d.Build(l)
	assert.InDelta(t, 0.9, l.Lights[0].Diffuse[0], 1e-5)
}

func TestSpotlightAndShadingToggles(t *testing.T) {
	d, im := newDemo(t, false)
	l := displaylist.New()
	d.Build(l)
	assert.True(t, l.Lights[0].IsSpot())
	assert.True(t, l.Smooth)
	assert.False(t, l.LocalViewer)

	press(d, im, '1', '2', '3')
	d.Build(l)
	assert.False(t, l.Lights[0].IsSpot())
	assert.False(t, l.Smooth)
	assert.True(t, l.LocalViewer)

	press(d, im, 'l')
	d.Build(l)
	assert.Zero(t, l.EnabledLights())
}

func TestProjectionToggle(t *testing.T) {
	d, im := newDemo(t, false)
	d.Resize(800, 400)
	press(d, im, 'p')
	require.True(t, d.cam.Orthographic())
	want := mgl32.Ortho(-20, 20, -10, 10, -100, 100)
	assert.True(t, d.cam.Projection().ApproxEqual(want))

	d.Resize(400, 400)
	assert.True(t, d.cam.Projection().ApproxEqual(mgl32.Ortho(-10, 10, -10, 10, -100, 100)))

	press(d, im, 'P')
	assert.False(t, d.cam.Orthographic())
}

func TestCarOnlyWhenEnabled(t *testing.T) {
	countWire := func(d *Demo) int {
		l := displaylist.New()
		d.Build(l)
		n := 0
		for _, c := range l.Commands {
			if c.Wire() {
				n++
			}
		}
		return n
	}
	plain, _ := newDemo(t, false)
	withCar, _ := newDemo(t, true)
	assert.Equal(t, 1, countWire(plain))
	assert.Equal(t, 1+2+2+4, countWire(withCar))
}

func TestCarMovesWhileAnimating(t *testing.T) {
	d, im := newDemo(t, true)
	d.Tick()
	assert.Zero(t, d.Car.Value)

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	d.HandleInput(im)
	require.True(t, d.State.Animate)
	for range 500 {
		d.Tick()
		assert.GreaterOrEqual(t, d.Car.Value, float32(CarLo))
		assert.LessOrEqual(t, d.Car.Value, float32(CarHi))
	}
	assert.NotZero(t, d.Wheel.Angle)
}
