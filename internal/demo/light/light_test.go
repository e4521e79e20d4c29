package light

import (
	"testing"

	"glscenes/internal/camera"
	"glscenes/internal/demo"
	"glscenes/internal/graphics/displaylist"
	"glscenes/internal/input"
	"glscenes/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ demo.Demo = (*Demo)(nil)

func newDemo(t *testing.T) (*Demo, *input.InputManager) {
	t.Helper()
	cam, err := camera.New(camera.Lens{FOV: 60, Aspect: 1, Near: 0.01, Far: 1000}, mgl32.Vec3{0, 2, 15}, 0)
	require.NoError(t, err)
	d := New(cam, demo.Textures{Checker: 1, Brick: 2, Wood: 3})
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

func TestColoredLightConeToggle(t *testing.T) {
	d, im := newDemo(t)
	l := displaylist.New()

	d.Build(l)
	require.True(t, l.Lights[SlotBlue].Enabled)
	assert.Equal(t, float32(ColoredCutoff), l.Lights[SlotBlue].SpotCutoff)

	press(d, im, '1')
	d.Build(l)
	assert.True(t, l.Lights[SlotBlue].Enabled)
	assert.False(t, l.Lights[SlotBlue].IsSpot())
	assert.True(t, l.Lights[SlotRed].IsSpot())
}

func TestMainLightsSwitchLeavesLamp(t *testing.T) {
	d, im := newDemo(t)
	l := displaylist.New()
	d.Build(l)
	require.Equal(t, 4, l.EnabledLights())

	press(d, im, 'l')
	d.Build(l)
	for _, slot := range []int{SlotBlue, SlotRed, SlotGreen} {
		assert.False(t, l.Lights[slot].Enabled, "slot %d", slot)
	}
	assert.True(t, l.Lights[SlotLamp].Enabled)
	assert.False(t, l.Lights[SlotHeadlamp].Enabled)
	assert.Equal(t, 1, l.EnabledLights())

	press(d, im, '4', '5')
	d.Build(l)
	assert.False(t, l.Lights[SlotLamp].Enabled)
	require.True(t, l.Lights[SlotHeadlamp].Enabled)

	press(d, im, '5')
	d.Build(l)
	assert.False(t, l.Lights[SlotHeadlamp].Enabled)
	assert.Zero(t, l.EnabledLights())
	press(d, im, '5')
	d.Build(l)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, l.Lights[SlotHeadlamp].Position)
	assert.Equal(t, float32(HeadlampCutoff), l.Lights[SlotHeadlamp].SpotCutoff)
}

func TestLightsAreNotSpunWithTheWorld(t *testing.T) {
	d, _ := newDemo(t)
	l := displaylist.New()
	d.State.Spin.Angle = 90
	d.Build(l)

	want := d.cam.View().Mul4x1(mgl32.Vec4{3, scene.InitialLightHeight, 1, 1})
	assert.True(t, l.Lights[SlotBlue].Position.ApproxEqualThreshold(want, 1e-4))
}

func TestFloorAndWalls(t *testing.T) {
	d, _ := newDemo(t)
	l := displaylist.New()
	d.Build(l)

	var floors, walls, wood int
	for _, c := range l.Commands {
		switch c.Texture.ID {
		case 1:
			floors++
			assert.Equal(t, displaylist.TexReplace, c.Texture.Env)
			assert.False(t, c.Texture.Sampler.Repeat)
		case 2:
			walls++
			assert.Equal(t, displaylist.TexDecal, c.Texture.Env)
			assert.True(t, c.Texture.Sampler.Repeat)
		case 3:
			wood++
		}
	}
	assert.Equal(t, 1, floors)
	assert.Equal(t, 4, walls)
	assert.Equal(t, 1, wood)
	assert.Equal(t, 1, l.Depth())
}

func TestDiceStopAfterBudget(t *testing.T) {
	d, im := newDemo(t)
	press(d, im, '7')
	require.True(t, d.Dice.Running())
	for i := 0; i < DiceTicks+5; i++ {
		d.Tick()
	}
	assert.False(t, d.Dice.Running())
	assert.Equal(t, float32(DiceTicks), d.Dice.Angle)
}

func TestBallsBounceOnlyWhenToggled(t *testing.T) {
	d, im := newDemo(t)
	d.Tick()
	assert.Equal(t, float32(BallHi), d.Tan.Value)

	press(d, im, '8', '9')
	for i := 0; i < 1000; i++ {
		d.Tick()
		assert.GreaterOrEqual(t, d.Tan.Value, float32(BallLo))
		assert.LessOrEqual(t, d.Tan.Value, float32(BallHi))
	}
	assert.NotEqual(t, float32(BallHi), d.Tan.Value)
	assert.NotEqual(t, float32(BallLo), d.Silver.Value)
}

func TestSpinSpeedArrows(t *testing.T) {
	d, im := newDemo(t)
	im.HandleKeyEvent(glfw.KeyRight, glfw.Press)
	d.HandleInput(im)
	im.PostUpdate()
	assert.InDelta(t, scene.InitialSpinStep-scene.SpinStepDelta, d.State.Spin.Step, 1e-6)

	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Repeat)
	d.HandleInput(im)
	assert.InDelta(t, scene.InitialSpinStep+scene.SpinStepDelta, d.State.Spin.Step, 1e-6)
}

func TestEscapeFadesThenFinishes(t *testing.T) {
	d, im := newDemo(t)
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	d.HandleInput(im)
	im.PostUpdate()

	ticks := 0
	for !d.Done() && ticks < 100 {
		d.Tick()
		ticks++
	}
	assert.True(t, d.Done())
	assert.Equal(t, 20, ticks)
}

func TestOverlayFollowsHelp(t *testing.T) {
	d, im := newDemo(t)
	assert.Nil(t, d.Overlay())
	press(d, im, 'H')
	lines := d.Overlay()
	require.Len(t, lines, len(Help)+1)
	assert.Contains(t, lines[len(lines)-1], "brightness 1.00")
}

func TestCameraKeys(t *testing.T) {
	d, im := newDemo(t)
	press(d, im, 'w', 'w')
	assert.InDelta(t, 15-2*0.5, d.cam.Eye.Z(), 1e-5)
	press(d, im, 'a')
	assert.InDelta(t, 2, d.cam.LookAngle, 1e-6)
}
