// Package scene holds the mutable state a demo advances on each timer tick.
package scene

import "glscenes/internal/anim"

// Defaults shared by the lit demos.
const (
	InitialSpinAngle   = 45
	InitialSpinStep    = 0.1
	SpinStepDelta      = 0.001
	MaxSpinStep        = 1
	InitialLightHeight = 10
	LightHeightDelta   = 0.05
	LightBottom        = -5
	LightTop           = 30
	FadeStep           = 0.05
)

// State is the scene state every lit demo carries.
type State struct {
	Animate     bool
	Fire        bool
	LightsOn    bool
	Smooth      bool
	LocalViewer bool
	HelpVisible bool

	Spin        anim.Spinner
	LightHeight anim.Clamped
	// Fade.Level doubles as the scene brightness.
	Fade anim.Fader

	Ticks int
}

// New returns the state every demo starts from.
func New() State {
	return State{
		LightsOn: true,
		Smooth:   true,
		Spin:     anim.Spinner{Angle: InitialSpinAngle, Step: InitialSpinStep, MaxStep: MaxSpinStep},
		LightHeight: anim.Clamped{
			Value: InitialLightHeight,
			Delta: LightHeightDelta,
			Lo:    LightBottom,
			Hi:    LightTop,
		},
		Fade: anim.NewFader(FadeStep),
	}
}

// Toggle flips a flag.
func Toggle(flag *bool) { *flag = !*flag }

// Brightness is the current light intensity multiplier in [0,1].
func (s *State) Brightness() float32 { return s.Fade.Level }

// SetBrightness changes the intensity, capped at 1.
func (s *State) SetBrightness(b float32) {
	if b > 1 {
		b = 1
	}
	if b < 0 {
		b = 0
	}
	s.Fade.Level = b
}

// RequestQuit starts the fade-out.
func (s *State) RequestQuit() { s.Fade.Begin() }

// Quitting reports whether the fade-out has started.
func (s *State) Quitting() bool { return s.Fade.Active() }

// Advance runs one timer tick and reports whether the fade-out has finished.
func (s *State) Advance() bool {
	if s.Fade.Advance() {
		return true
	}
	if s.Animate {
		s.Ticks++
		s.Spin.Advance()
	}
	return false
}
