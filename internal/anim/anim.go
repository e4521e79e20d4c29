// Package anim holds the per-tick update rules for animated scalars.
// Every type here is a plain value advanced once per timer tick.
package anim

import "github.com/chewxy/math32"

// Bouncer moves back and forth between Lo and Hi.
// Reaching or crossing a bound clamps the value to it and reverses the step.
type Bouncer struct {
	Value float32
	Step  float32
	Lo    float32
	Hi    float32
}

// NewBouncer returns a bouncer starting at value. Bounds are swapped if given in the wrong order.
func NewBouncer(value, step, lo, hi float32) Bouncer {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Bouncer{Value: clamp(value, lo, hi), Step: step, Lo: lo, Hi: hi}
}

// Advance applies one tick and returns the new value.
func (b *Bouncer) Advance() float32 {
	b.Value += b.Step
	if b.Value <= b.Lo {
		b.Value = b.Lo
		b.Step = -b.Step
	} else if b.Value >= b.Hi {
		b.Value = b.Hi
		b.Step = -b.Step
	}
	return b.Value
}

// Spinner is an angle in degrees kept inside [0, 360).
type Spinner struct {
	Angle float32
	Step  float32
	// MaxStep bounds |Step| when adjusted through Nudge. Zero means unbounded.
	MaxStep float32
}

// Advance applies one tick and returns the new angle.
func (s *Spinner) Advance() float32 {
	s.Angle = wrapDegrees(s.Angle + s.Step)
	return s.Angle
}

// Nudge changes the step by delta, refusing to push |Step| past MaxStep.
func (s *Spinner) Nudge(delta float32) {
	next := s.Step + delta
	if s.MaxStep > 0 && (next > s.MaxStep || next < -s.MaxStep) {
		return
	}
	s.Step = next
}

// Countdown advances an angle by Step for a fixed number of ticks, then stops itself.
type Countdown struct {
	Angle   float32
	Step    float32
	Ticks   int
	elapsed int
	running bool
}

// Start (re)arms the countdown with a fresh tick budget.
func (c *Countdown) Start() {
	c.elapsed = 0
	c.running = true
}

// Toggle starts a stopped countdown and stops a running one.
func (c *Countdown) Toggle() {
	if c.running {
		c.running = false
		return
	}
	c.Start()
}

// Running reports whether the countdown still has ticks left.
func (c *Countdown) Running() bool { return c.running }

// Advance applies one tick. A countdown that is not running does nothing.
func (c *Countdown) Advance() float32 {
	if !c.running {
		return c.Angle
	}
	if c.elapsed >= c.Ticks {
		c.running = false
		return c.Angle
	}
	c.Angle = wrapDegrees(c.Angle + c.Step)
	c.elapsed++
	if c.elapsed >= c.Ticks {
		c.running = false
	}
	return c.Angle
}

// Clamped is a value nudged up and down by Delta and held inside [Lo, Hi].
type Clamped struct {
	Value float32
	Delta float32
	Lo    float32
	Hi    float32
}

// Up raises the value by one delta.
func (c *Clamped) Up() float32 {
	c.Value = clamp(c.Value+c.Delta, c.Lo, c.Hi)
	return c.Value
}

// Down lowers the value by one delta.
func (c *Clamped) Down() float32 {
	c.Value = clamp(c.Value-c.Delta, c.Lo, c.Hi)
	return c.Value
}

// Fader dims a brightness level towards zero once started.
type Fader struct {
	Level  float32
	Step   float32
	Cutoff float32
	active bool
}

// NewFader returns a fader at full brightness using the given step.
func NewFader(step float32) Fader {
	return Fader{Level: 1, Step: step, Cutoff: 0.01}
}

// Begin starts fading. Calling it again has no effect.
func (f *Fader) Begin() { f.active = true }

// Active reports whether a fade is in progress.
func (f *Fader) Active() bool { return f.active }

// Advance dims by one step and reports whether the fade has finished.
func (f *Fader) Advance() bool {
	if !f.active {
		return false
	}
	f.Level -= f.Step
	if f.Level < f.Cutoff {
		f.Level = 0
		return true
	}
	return false
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapDegrees(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// -tiny + 360 rounds to 360
	if a >= 360 {
		a = 0
	}
	return a
}
