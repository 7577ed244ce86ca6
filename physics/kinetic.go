package physics

import (
	"github.com/lixenwraith/slicer/core"
)

// Integrate performs one frame of object integration: v = v + g; p = p + v; r = r + ω
func Integrate(k *core.Kinetic, gravity float64) {
	k.VY += gravity
	k.X += k.VX
	k.Y += k.VY
	k.Rotation += k.RotationSpeed
}

// IntegrateParticle moves first and accelerates after, matching the burst effect's visual arc
func IntegrateParticle(k *core.Kinetic, gravity float64) {
	k.X += k.VX
	k.Y += k.VY
	k.VY += gravity
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(k *core.Kinetic, vx, vy float64) {
	k.VX = vx
	k.VY = vy
}
