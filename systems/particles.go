package systems

import (
	"time"

	"github.com/lixenwraith/slicer/components"
	"github.com/lixenwraith/slicer/constants"
	"github.com/lixenwraith/slicer/core"
	"github.com/lixenwraith/slicer/engine"
	"github.com/lixenwraith/slicer/physics"
	"github.com/lixenwraith/slicer/vmath"
)

// ParticleSystem is the pool of decorative burst particles
type ParticleSystem struct{}

// NewParticleSystem creates a new particle system
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// Priority returns the system's priority
func (p *ParticleSystem) Priority() int {
	return PriorityParticles
}

// Update advances every live particle by one frame
func (p *ParticleSystem) Update(s *engine.Session, _ time.Time) {
	p.Advance(s)
}

// Burst emits BurstSize particles evenly spaced around (x, y)
func (p *ParticleSystem) Burst(s *engine.Session, x, y float64, color core.RGB) {
	for i := 0; i < constants.BurstSize; i++ {
		angle := constants.FullTurn * float64(i) / constants.BurstSize
		speed := constants.ParticleMinSpeed + s.Rand.Float64()*constants.ParticleSpeedRange
		vx, vy := vmath.Polar(angle, speed)

		s.Particles = append(s.Particles, components.Particle{
			Kinetic: core.Kinetic{X: x, Y: y, VX: vx, VY: vy},
			Life:    1,
			Color:   color,
		})
	}
	s.Stats.ParticlesEmitted(constants.BurstSize)
}

// Advance integrates, decays and compacts the particle pool
func (p *ParticleSystem) Advance(s *engine.Session) {
	kept := s.Particles[:0]
	for i := range s.Particles {
		part := s.Particles[i]
		physics.IntegrateParticle(&part.Kinetic, constants.ParticleGravity)
		part.Decay(constants.ParticleDecay)
		if !part.Alive() {
			continue
		}
		kept = append(kept, part)
	}
	s.Particles = kept
}
