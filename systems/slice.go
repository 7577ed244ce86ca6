package systems

import (
	"time"

	"github.com/lixenwraith/slicer/components"
	"github.com/lixenwraith/slicer/constants"
	"github.com/lixenwraith/slicer/engine"
	"github.com/lixenwraith/slicer/physics"
)

// SliceSystem is the collision and scoring pass between the pointer and live objects
type SliceSystem struct {
	objects   *ObjectSystem
	particles *ParticleSystem
	trail     *TrailSystem
}

// NewSliceSystem wires the scoring pass to the pools it mutates on a hit
func NewSliceSystem(objects *ObjectSystem, particles *ParticleSystem, trail *TrailSystem) *SliceSystem {
	return &SliceSystem{
		objects:   objects,
		particles: particles,
		trail:     trail,
	}
}

// Priority returns the system's priority
func (sl *SliceSystem) Priority() int {
	return PriorityCombo
}

// Update runs the once-per-frame combo timeout
func (sl *SliceSystem) Update(s *engine.Session, now time.Time) {
	sl.ExpireCombo(s, now)
}

// ExpireCombo resets the combo after ComboWindow without a hit
func (sl *SliceSystem) ExpireCombo(s *engine.Session, now time.Time) {
	if s.Combo() == 0 {
		return
	}
	if now.Sub(s.LastComboHit()) > constants.ComboWindow {
		s.Log.Debug().Int("combo", s.Combo()).Msg("combo expired")
		s.ResetCombo()
	}
}

// PointerMoved records a pointer sample and, while playing, hit-tests every live object
// Fragments appended by a hit are already split and are not visited
func (sl *SliceSystem) PointerMoved(s *engine.Session, x, y float64, now time.Time) int {
	sl.trail.RecordMove(s, x, y, now)
	if !s.IsPlaying() {
		return 0
	}

	hits := 0
	live := len(s.Objects)
	for i := 0; i < live; i++ {
		if sl.CheckSlice(s, s.Objects[i], x, y, now) {
			hits++
		}
	}
	return hits
}

// CheckSlice registers a hit when the pointer is within the object's size of its center
// A split object never scores again
func (sl *SliceSystem) CheckSlice(s *engine.Session, obj *components.FallingObject, px, py float64, now time.Time) bool {
	if obj.Split {
		return false
	}
	if !physics.WithinRadius(px, py, obj.X, obj.Y, obj.Size) {
		return false
	}

	sl.objects.Split(s, obj, now)
	sl.particles.Burst(s, obj.X, obj.Y, obj.Color())
	s.Sound.PlaySlice(constants.SliceBaseFrequency + s.Rand.Float64()*constants.SliceFrequencyRange)

	combo := s.BumpCombo(now)
	points := constants.PointsPerCombo * combo
	s.AddScore(points)
	s.Stats.ObjectSliced(combo)

	s.Log.Debug().
		Str("category", obj.Category.Name).
		Int("combo", combo).
		Int("points", points).
		Int("score", s.Score()).
		Msg("slice")
	return true
}
