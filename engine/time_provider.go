package engine

import (
	"sync"
	"time"
)

// Clock is the time source of a session, all simulation timestamps come from it
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to, used to drive frames deterministically
type ManualClock struct {
	mu     sync.RWMutex
	origin time.Time
	now    time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{origin: start, now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward, negative durations are ignored
func (c *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Elapsed reports how far the clock has moved since construction
func (c *ManualClock) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now.Sub(c.origin)
}
