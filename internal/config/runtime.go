package config

import "sync"

// RuntimeSettings holds values that may change while a demo runs.
type RuntimeSettings struct {
	mu       sync.RWMutex
	fpsLimit int
	tickRate float64
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit: 120,
	tickRate: 60,
}

// GetFPSLimit returns the frame cap. Zero means uncapped.
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRuntimeSettings.fpsLimit = limit
}

// GetTickRate returns the animation timer frequency in Hz
func GetTickRate() float64 {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.tickRate
}

// SetTickRate sets the animation timer frequency, clamped to [1, 1000] Hz
func SetTickRate(hz float64) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	if hz < 1 {
		hz = 1
	}
	if hz > 1000 {
		hz = 1000
	}

	globalRuntimeSettings.tickRate = hz
}

// Apply publishes the startup settings to the runtime getters.
func Apply(s Settings) {
	SetFPSLimit(s.FPSLimit)
	SetTickRate(s.TickRate)
}
