package components

import "github.com/lixenwraith/slicer/core"

// lifeEpsilon absorbs float residue of repeated fixed decrements
const lifeEpsilon = 1e-9

// Particle is a short-lived decorative burst element
// Life counts down from 1, the particle is removed at or below 0
type Particle struct {
	core.Kinetic

	Life  float64
	Color core.RGB
}

// Decay subtracts amount from life, snapping residue to exactly zero
func (p *Particle) Decay(amount float64) {
	p.Life -= amount
	if p.Life < lifeEpsilon {
		p.Life = 0
	}
}

// Alive reports whether the particle still has life left
func (p *Particle) Alive() bool {
	return p.Life > 0
}
