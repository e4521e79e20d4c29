package app

import (
	"time"

	"glscenes/internal/config"
)

// IdleFPS caps the frame rate while the window is minimized.
const IdleFPS = 15

// spinWindow is how long before the deadline the limiter stops sleeping.
const spinWindow = 200 * time.Microsecond

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due under the configured limit.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait(idle bool) {
	limit := config.GetFPSLimit()
	if idle && (limit <= 0 || limit > IdleFPS) {
		limit = IdleFPS
	}
	target := f.schedule(time.Now(), limit)
	if target == 0 {
		return
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// Resync after a hitch instead of rushing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}

// schedule advances the deadline by one frame period and returns that
// period, or zero when the rate is uncapped.
func (f *FPSLimiter) schedule(now time.Time, limit int) time.Duration {
	if limit <= 0 {
		f.next = time.Time{}
		return 0
	}
	target := time.Second / time.Duration(limit)
	if f.next.IsZero() {
		f.next = now.Add(target)
	} else {
		f.next = f.next.Add(target)
	}
	return target
}
