package game

import (
	"sync"
	"time"
)

// TimeSource provides the current time to the simulation clock.
// The default implementation uses system time; tests inject a
// ManualTimeSource to control frame timing deterministically.
type TimeSource interface {
	Now() time.Time
}

// SystemTimeSource uses time.Now.
type SystemTimeSource struct{}

// Now returns the wall clock time (with its monotonic reading).
func (SystemTimeSource) Now() time.Time { return time.Now() }

// ManualTimeSource is a TimeSource that only moves when told to.
type ManualTimeSource struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualTimeSource creates a manual source starting at start.
func NewManualTimeSource(start time.Time) *ManualTimeSource {
	return &ManualTimeSource{now: start}
}

// Now returns the current manual time.
func (m *ManualTimeSource) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the manual time forward by d.
func (m *ManualTimeSource) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
