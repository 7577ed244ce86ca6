package systems

import (
	"time"

	"github.com/lixenwraith/slicer/components"
	"github.com/lixenwraith/slicer/constants"
	"github.com/lixenwraith/slicer/engine"
)

// TrailSystem buffers recent pointer samples for the slice trail
type TrailSystem struct{}

// NewTrailSystem creates a new trail system
func NewTrailSystem() *TrailSystem {
	return &TrailSystem{}
}

// Priority returns the system's priority
func (t *TrailSystem) Priority() int {
	return PriorityTrail
}

// Update drops expired samples
func (t *TrailSystem) Update(s *engine.Session, now time.Time) {
	t.Prune(s, now)
}

// RecordMove tracks the pointer and, while playing, appends a sample
// The buffer holds at most TrailCapacity samples, oldest evicted first
func (t *TrailSystem) RecordMove(s *engine.Session, x, y float64, now time.Time) {
	s.PrevPointerX, s.PrevPointerY = s.PointerX, s.PointerY
	s.PointerX, s.PointerY = x, y

	if !s.IsPlaying() {
		return
	}

	s.Trail = append(s.Trail, components.TrailPoint{X: x, Y: y, Time: now})
	if over := len(s.Trail) - constants.TrailCapacity; over > 0 {
		// Shift in place so the backing array does not creep forward
		n := copy(s.Trail, s.Trail[over:])
		s.Trail = s.Trail[:n]
	}
}

// Prune removes samples older than TrailLifetime in a separate filtering pass
func (t *TrailSystem) Prune(s *engine.Session, now time.Time) {
	kept := s.Trail[:0]
	for _, p := range s.Trail {
		if Expired(p, now) {
			continue
		}
		kept = append(kept, p)
	}
	s.Trail = kept
}

// Expired reports whether a trail sample is past its lifetime
func Expired(p components.TrailPoint, now time.Time) bool {
	return p.Age(now) > constants.TrailLifetime
}
