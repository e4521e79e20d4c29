package demo

import (
	"log/slog"
	"unicode"

	"glscenes/internal/camera"
	"glscenes/internal/input"
	"glscenes/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// BindChar binds a letter in both cases, so Shift or Caps Lock does not matter.
func BindChar(im *input.InputManager, r rune, action input.Action) {
	im.BindChar(unicode.ToLower(r), action)
	if up := unicode.ToUpper(r); up != unicode.ToLower(r) {
		im.BindChar(up, action)
	}
}

// BindCommon installs the bindings every lit demo shares.
func BindCommon(im *input.InputManager) {
	im.BindKey(glfw.KeyEscape, input.ActionQuit)
	im.BindKey(glfw.KeySpace, input.ActionToggleAnimation)
	im.BindKey(glfw.KeyLeft, input.ActionSpinFaster)
	im.BindKey(glfw.KeyRight, input.ActionSpinSlower)

	BindChar(im, 'a', input.ActionTurnLeft)
	BindChar(im, 'd', input.ActionTurnRight)
	BindChar(im, 'w', input.ActionMoveForward)
	BindChar(im, 's', input.ActionMoveBackward)
	BindChar(im, 'q', input.ActionMoveUp)
	BindChar(im, 'e', input.ActionMoveDown)
	BindChar(im, 'f', input.ActionFire)
	BindChar(im, 'l', input.ActionToggleLights)
	BindChar(im, 'h', input.ActionHelp)

	im.BindChar('-', input.ActionLightDown)
	im.BindChar('+', input.ActionLightUp)
	// '+' is Shift+'=' on most layouts.
	im.BindChar('=', input.ActionLightUp)
}

// DriveCamera applies every turn and slide press of this frame to cam.
func DriveCamera(im *input.InputManager, cam *camera.Camera) {
	for range im.Pressed(input.ActionTurnLeft) {
		cam.Turn(1)
	}
	for range im.Pressed(input.ActionTurnRight) {
		cam.Turn(-1)
	}
	for range im.Pressed(input.ActionMoveForward) {
		cam.Slide(0, 0, -1)
	}
	for range im.Pressed(input.ActionMoveBackward) {
		cam.Slide(0, 0, 1)
	}
	for range im.Pressed(input.ActionMoveUp) {
		cam.Slide(0, 1, 0)
	}
	for range im.Pressed(input.ActionMoveDown) {
		cam.Slide(0, -1, 0)
	}
}

// DriveState applies the shared scene actions to st. help is logged each
// time the help overlay is switched on.
func DriveState(im *input.InputManager, st *scene.State, help []string) {
	if im.Pressed(input.ActionQuit) > 0 && !st.Quitting() {
		slog.Info("quit requested, fading out")
		st.RequestQuit()
	}
	if odd(im.Pressed(input.ActionToggleAnimation)) {
		scene.Toggle(&st.Animate)
	}
	if im.Pressed(input.ActionFire) > 0 {
		st.Fire = true
	}
	if odd(im.Pressed(input.ActionToggleLights)) {
		scene.Toggle(&st.LightsOn)
	}
	if odd(im.Pressed(input.ActionHelp)) {
		scene.Toggle(&st.HelpVisible)
		if st.HelpVisible {
			for _, line := range help {
				slog.Info(line)
			}
		}
	}
	for range im.Pressed(input.ActionLightUp) {
		st.LightHeight.Up()
	}
	for range im.Pressed(input.ActionLightDown) {
		st.LightHeight.Down()
	}
	for range im.Pressed(input.ActionSpinFaster) {
		st.Spin.Nudge(scene.SpinStepDelta)
	}
	for range im.Pressed(input.ActionSpinSlower) {
		st.Spin.Nudge(-scene.SpinStepDelta)
	}
}

// Toggled flips flag when the action arrived an odd number of times this frame.
func Toggled(im *input.InputManager, action input.Action, flag *bool) {
	if odd(im.Pressed(action)) {
		scene.Toggle(flag)
	}
}

func odd(n int) bool { return n%2 == 1 }
