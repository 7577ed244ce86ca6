package engine

import (
	"slices"
	"time"
)

// System is a per-frame simulation pass
type System interface {
	Update(s *Session, now time.Time)
	Priority() int // Lower values run first
}

// FrameRenderer draws the session after all systems ran
type FrameRenderer interface {
	RenderFrame(s *Session, now time.Time)
}

// FrameDriver ties the per-frame passes together
// Tick is synchronous: systems in priority order, then one render pass
type FrameDriver struct {
	session  *Session
	systems  []System
	renderer FrameRenderer
	frames   uint64
}

// NewFrameDriver creates a driver for the session
func NewFrameDriver(s *Session) *FrameDriver {
	return &FrameDriver{
		session: s,
		systems: make([]System, 0, 8),
	}
}

// AddSystem registers a system, keeping priority order stable for equal priorities
func (d *FrameDriver) AddSystem(system System) {
	d.systems = append(d.systems, system)
	slices.SortStableFunc(d.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// SetRenderer sets the render pass, nil disables rendering
func (d *FrameDriver) SetRenderer(r FrameRenderer) {
	d.renderer = r
}

// Tick runs one frame at the session clock's current time
func (d *FrameDriver) Tick() {
	start := time.Now()
	now := d.session.Clock.Now()

	for _, system := range d.systems {
		system.Update(d.session, now)
	}

	if d.renderer != nil {
		d.renderer.RenderFrame(d.session, now)
	}

	d.frames++
	d.session.Stats.FrameCompleted(time.Since(start))
}

// FrameCount returns the number of completed ticks
func (d *FrameDriver) FrameCount() uint64 {
	return d.frames
}
