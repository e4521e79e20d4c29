package app

import (
	"math"
	"time"
)

// MaxCatchUp bounds how many ticks one frame may run after a stall.
const MaxCatchUp = 5

// Period is the timer delay for rate hz, rounded to whole milliseconds
// like a millisecond timer callback.
func Period(hz float64) time.Duration {
	ms := math.Round(1000 / hz)
	return time.Duration(max(ms, 1)) * time.Millisecond
}

// Ticker turns elapsed wall time into a count of fixed-rate timer ticks.
type Ticker struct {
	last    time.Time
	pending time.Duration
}

// NewTicker starts counting from now.
func NewTicker(now time.Time) *Ticker {
	return &Ticker{last: now}
}

// Due returns how many ticks at rate hz have elapsed since the previous call.
// Backlog beyond MaxCatchUp ticks is dropped.
func (t *Ticker) Due(now time.Time, hz float64) int {
	if now.After(t.last) {
		t.pending += now.Sub(t.last)
	}
	t.last = now

	period := Period(hz)
	n := int(t.pending / period)
	t.pending -= time.Duration(n) * period
	if n > MaxCatchUp {
		n = MaxCatchUp
		t.pending = 0
	}
	return n
}
