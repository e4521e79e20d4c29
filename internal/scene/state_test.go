package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleTwiceRestores(t *testing.T) {
	s := New()
	for _, flag := range []*bool{&s.Animate, &s.LightsOn, &s.Smooth, &s.LocalViewer, &s.HelpVisible, &s.Fire} {
		before := *flag
		Toggle(flag)
		assert.NotEqual(t, before, *flag)
		Toggle(flag)
		assert.Equal(t, before, *flag)
	}
}

func TestAdvanceSpinsOnlyWhenAnimating(t *testing.T) {
	s := New()
	s.Advance()
	assert.Equal(t, float32(InitialSpinAngle), s.Spin.Angle)
	assert.Zero(t, s.Ticks)

	s.Animate = true
	s.Advance()
	assert.InDelta(t, InitialSpinAngle+InitialSpinStep, s.Spin.Angle, 1e-5)
	assert.Equal(t, 1, s.Ticks)
}

func TestQuitFadesOut(t *testing.T) {
	s := New()
	assert.False(t, s.Quitting())
	s.SetBrightness(0.5)
	s.RequestQuit()
	require.True(t, s.Quitting())

	done := false
	for i := 0; i < 20 && !done; i++ {
		done = s.Advance()
	}
	assert.True(t, done)
	assert.Zero(t, s.Brightness())
}

func TestBrightnessIsCapped(t *testing.T) {
	s := New()
	s.SetBrightness(s.Brightness() / 0.9)
	assert.Equal(t, float32(1), s.Brightness())
	s.SetBrightness(-1)
	assert.Zero(t, s.Brightness())
}

func TestLightHeightBounds(t *testing.T) {
	s := New()
	for i := 0; i < 1000; i++ {
		s.LightHeight.Up()
	}
	assert.Equal(t, float32(LightTop), s.LightHeight.Value)
	for i := 0; i < 2000; i++ {
		s.LightHeight.Down()
	}
	assert.Equal(t, float32(LightBottom), s.LightHeight.Value)
}
