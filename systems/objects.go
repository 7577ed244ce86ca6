package systems

import (
	"time"

	"github.com/lixenwraith/slicer/components"
	"github.com/lixenwraith/slicer/constants"
	"github.com/lixenwraith/slicer/core"
	"github.com/lixenwraith/slicer/engine"
	"github.com/lixenwraith/slicer/physics"
)

// ObjectSystem is the pool of falling objects and their split fragments
type ObjectSystem struct{}

// NewObjectSystem creates a new object system
func NewObjectSystem() *ObjectSystem {
	return &ObjectSystem{}
}

// Priority returns the system's priority
func (o *ObjectSystem) Priority() int {
	return PriorityObjects
}

// Update advances every live object by one frame
func (o *ObjectSystem) Update(s *engine.Session, now time.Time) {
	o.Advance(s, now)
}

// Spawn launches a random catalog object from just below the bottom edge
func (o *ObjectSystem) Spawn(s *engine.Session, now time.Time) *components.FallingObject {
	rng := s.Rand
	category := components.Catalog[rng.IntN(len(components.Catalog))]
	size := constants.ObjectMinSize + rng.Float64()*constants.ObjectSizeRange

	// Keep the whole glyph inside [0, width]
	x := s.Width / 2
	if span := s.Width - size*2; span >= 0 {
		x = rng.Float64()*span + size
	}

	obj := &components.FallingObject{
		Kinetic: core.Kinetic{
			X:             x,
			Y:             s.Height + size,
			VX:            (rng.Float64() - 0.5) * constants.ObjectDriftRange,
			VY:            -constants.ObjectMinLaunchSpeed - rng.Float64()*constants.ObjectLaunchSpeedRange,
			Rotation:      rng.Float64() * constants.FullTurn,
			RotationSpeed: (rng.Float64() - 0.5) * constants.ObjectSpinRange,
		},
		Category: category,
		Size:     size,
	}

	s.Objects = append(s.Objects, obj)
	s.LastSpawn = now
	s.Stats.ObjectSpawned(category.Name)
	return obj
}

// Advance integrates every object and drops those off-surface or fully decayed
// Survivors are compacted in place after integration, never removed mid-iteration
func (o *ObjectSystem) Advance(s *engine.Session, now time.Time) {
	kept := s.Objects[:0]
	for _, obj := range s.Objects {
		physics.Integrate(&obj.Kinetic, constants.ObjectGravity)

		if physics.OutOfBounds(obj.X, obj.Y, s.Width, s.Height, constants.CullMargin) {
			continue
		}
		if obj.Split && obj.SplitAge(now) >= constants.SplitLifetime {
			continue
		}
		kept = append(kept, obj)
	}

	// Release dropped pointers held in the tail
	for i := len(kept); i < len(s.Objects); i++ {
		s.Objects[i] = nil
	}
	s.Objects = kept
}

// Split marks obj as sliced and adds its two diverging halves
// The original keeps rendering while it decays; a second split of the same object is a no-op
func (o *ObjectSystem) Split(s *engine.Session, obj *components.FallingObject, now time.Time) bool {
	if obj.Split {
		return false
	}
	obj.Split = true
	obj.SplitTime = now

	rng := s.Rand
	left := *obj
	left.Half = components.HalfLeft
	physics.SetImpulse(&left.Kinetic,
		-constants.FragmentMinSpeed-rng.Float64()*constants.FragmentSpeedRange,
		obj.VY-constants.FragmentLift)
	left.RotationSpeed = -constants.FragmentSpin

	right := *obj
	right.Half = components.HalfRight
	physics.SetImpulse(&right.Kinetic,
		constants.FragmentMinSpeed+rng.Float64()*constants.FragmentSpeedRange,
		obj.VY-constants.FragmentLift)
	right.RotationSpeed = constants.FragmentSpin

	s.Objects = append(s.Objects, &left, &right)
	return true
}

// SpawnSystem launches a new object every spawn interval while playing
type SpawnSystem struct {
	objects *ObjectSystem
}

// NewSpawnSystem creates a spawn check backed by the object pool
func NewSpawnSystem(objects *ObjectSystem) *SpawnSystem {
	return &SpawnSystem{objects: objects}
}

// Priority returns the system's priority
func (sp *SpawnSystem) Priority() int {
	return PrioritySpawn
}

// Update spawns once at least the spawn interval elapsed since the previous spawn
func (sp *SpawnSystem) Update(s *engine.Session, now time.Time) {
	if !s.IsPlaying() {
		return
	}
	if now.Sub(s.LastSpawn) < constants.SpawnInterval {
		return
	}
	obj := sp.objects.Spawn(s, now)
	s.Log.Debug().Str("category", obj.Category.Name).Float64("x", obj.X).Float64("size", obj.Size).Msg("spawn")
}
