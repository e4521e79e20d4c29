package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBouncerStaysWithinBounds(t *testing.T) {
	steps := []float32{0.01, 0.3, 1.7, 6.9}
	for _, s := range steps {
		b := NewBouncer(-4, s, -4, 2.8)
		for i := 0; i < 5000; i++ {
			v := b.Advance()
			require.GreaterOrEqual(t, v, float32(-4), "step %v tick %d", s, i)
			require.LessOrEqual(t, v, float32(2.8), "step %v tick %d", s, i)
		}
	}
}

func TestBouncerReversesAtBounds(t *testing.T) {
	b := NewBouncer(0, 0.5, -1, 1)

	var prev float32
	sawHi, sawLo := false, false
	for i := 0; i < 100; i++ {
		prev = b.Value
		v := b.Advance()
		if v == b.Hi {
			sawHi = true
			next := b.Advance()
			assert.Less(t, next-v, float32(0), "delta after reaching hi must be negative")
		}
		if v == b.Lo && prev != b.Lo {
			sawLo = true
			next := b.Advance()
			assert.Greater(t, next-v, float32(0), "delta after reaching lo must be positive")
		}
	}
	assert.True(t, sawHi)
	assert.True(t, sawLo)
}

func TestBouncerOvershootIsClamped(t *testing.T) {
	b := NewBouncer(2.7, 0.25, -4, 2.8)
	assert.Equal(t, float32(2.8), b.Advance())
	assert.Equal(t, float32(-0.25), b.Step)
}

func TestNewBouncerSwapsBounds(t *testing.T) {
	b := NewBouncer(10, 1, 5, -5)
	assert.Equal(t, float32(-5), b.Lo)
	assert.Equal(t, float32(5), b.Hi)
	assert.Equal(t, float32(5), b.Value)
}

func TestSpinnerWraps(t *testing.T) {
	s := Spinner{Angle: 359.5, Step: 1}
	assert.InDelta(t, 0.5, s.Advance(), 1e-4)

	s = Spinner{Angle: 0.2, Step: -0.5}
	assert.InDelta(t, 359.7, s.Advance(), 1e-4)

	s = Spinner{Angle: 45, Step: 7.3}
	for i := 0; i < 1000; i++ {
		a := s.Advance()
		require.GreaterOrEqual(t, a, float32(0))
		require.Less(t, a, float32(360))
	}
}

func TestSpinnerNudgeRespectsMaxStep(t *testing.T) {
	s := Spinner{Step: 0.5, MaxStep: 1}
	s.Nudge(0.5)
	assert.Equal(t, float32(1), s.Step)
	s.Nudge(0.5)
	assert.Equal(t, float32(1), s.Step)
	s.Nudge(-2.5)
	assert.Equal(t, float32(1), s.Step)
	s.Nudge(-2)
	assert.Equal(t, float32(-1), s.Step)

	s = Spinner{Step: 0.1}
	s.Nudge(100)
	assert.InDelta(t, 100.1, s.Step, 1e-4)
}

func TestCountdownStopsAfterBudget(t *testing.T) {
	c := Countdown{Step: 1, Ticks: 300}
	c.Advance()
	assert.Zero(t, c.Angle, "idle countdown must not move")

	c.Start()
	for i := 0; i < 299; i++ {
		c.Advance()
		require.True(t, c.Running(), "tick %d", i+1)
	}
	c.Advance()
	assert.False(t, c.Running(), "stops on the last tick of the budget")
	assert.InDelta(t, 300, c.Angle, 1e-3)

	c.Advance()
	assert.InDelta(t, 300, c.Angle, 1e-3)
}

func TestCountdownZeroBudget(t *testing.T) {
	c := Countdown{Step: 1}
	c.Start()
	c.Advance()
	assert.False(t, c.Running())
	assert.Zero(t, c.Angle)
}

func TestCountdownToggle(t *testing.T) {
	c := Countdown{Step: 1, Ticks: 10}
	c.Toggle()
	assert.True(t, c.Running())
	c.Toggle()
	assert.False(t, c.Running())
}

func TestClampedHoldsRange(t *testing.T) {
	c := Clamped{Value: 29.98, Delta: 0.05, Lo: -5, Hi: 30}
	assert.Equal(t, float32(30), c.Up())
	assert.Equal(t, float32(30), c.Up())

	c.Value = -4.97
	assert.Equal(t, float32(-5), c.Down())
}

func TestFaderFinishes(t *testing.T) {
	f := NewFader(0.05)
	assert.False(t, f.Advance(), "inactive fader never finishes")
	assert.Equal(t, float32(1), f.Level)

	f.Begin()
	ticks := 0
	for !f.Advance() {
		ticks++
		require.Less(t, ticks, 100)
	}
	assert.Equal(t, 19, ticks)
	assert.Zero(t, f.Level)
}
