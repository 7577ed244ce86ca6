package systems

import (
	"time"

	"github.com/lixenwraith/slicer/components"
	"github.com/lixenwraith/slicer/core"
	"github.com/lixenwraith/slicer/engine"
)

var testEpoch = time.Unix(1_700_000_000, 0)

// recordingSound captures cue frequencies instead of producing audio
type recordingSound struct {
	frequencies []float64
}

func (r *recordingSound) PlaySlice(freq float64) {
	r.frequencies = append(r.frequencies, freq)
}

// newTestSession creates a deterministic 800x600 session on a mock clock
func newTestSession() (*engine.Session, *engine.ManualClock, *recordingSound) {
	clock := engine.NewManualClock(testEpoch)
	sound := &recordingSound{}
	s := engine.NewSession(800, 600,
		engine.WithClock(clock),
		engine.WithSeed(42),
		engine.WithSound(sound),
	)
	return s, clock, sound
}

// placeObject adds a whole object at a fixed position with no motion
func placeObject(s *engine.Session, x, y, size float64) *components.FallingObject {
	obj := &components.FallingObject{
		Kinetic:  core.Kinetic{X: x, Y: y},
		Category: components.Catalog[0],
		Size:     size,
	}
	s.Objects = append(s.Objects, obj)
	return obj
}

// newPasses creates the full set of simulation passes
func newPasses() (*ObjectSystem, *ParticleSystem, *TrailSystem, *SliceSystem) {
	objects := NewObjectSystem()
	particles := NewParticleSystem()
	trail := NewTrailSystem()
	return objects, particles, trail, NewSliceSystem(objects, particles, trail)
}
