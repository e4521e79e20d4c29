package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyEventsCountPressesAndRepeats(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyLeft, ActionSpinFaster)

	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Repeat)
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Repeat)

	im.HandleKeyEvent(glfw.KeyLeft, glfw.Release)
	assert.Equal(t, 3, im.Pressed(ActionSpinFaster), "releases do not count")

	im.PostUpdate()
	assert.Zero(t, im.Pressed(ActionSpinFaster))
}

func TestCharEvents(t *testing.T) {
	im := NewInputManager()
	im.BindChar('+', ActionLightUp)
	im.BindChar('=', ActionLightUp)

	im.HandleCharEvent('+')
	im.HandleCharEvent('=')
	im.HandleCharEvent('x')
	assert.Equal(t, 2, im.Pressed(ActionLightUp))
}

func TestUnboundAndInvalid(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyA, ActionCount)
	im.BindChar('a', Action(-1))

	im.HandleKeyEvent(glfw.KeyA, glfw.Press)
	im.HandleCharEvent('a')
	for a := Action(0); a < ActionCount; a++ {
		assert.Zero(t, im.Pressed(a))
	}
	assert.Zero(t, im.Pressed(ActionCount))
	assert.Zero(t, im.Pressed(-1))
}

func TestOneKeyManyActions(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyEscape, ActionHelp)
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	assert.Equal(t, 1, im.Pressed(ActionQuit))
	assert.Equal(t, 1, im.Pressed(ActionHelp))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "quit", ActionQuit.String())
	assert.Equal(t, "toggle_projection", ActionToggleProjection.String())
	assert.Equal(t, "unknown", ActionCount.String())
}
