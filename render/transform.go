package render

import "github.com/lixenwraith/slicer/vmath"

// Transform places object-local coordinates on the surface
// Built per object and discarded, so no state leaks between draws
type Transform struct {
	X, Y  float64
	Angle float64
}

// NewTransform translates to x, y then rotates by angle
func NewTransform(x, y, angle float64) Transform {
	return Transform{X: x, Y: y, Angle: angle}
}

// Apply maps a local point to surface units
func (t Transform) Apply(lx, ly float64) (float64, float64) {
	rx, ry := vmath.Rotate(lx, ly, t.Angle)
	return t.X + rx, t.Y + ry
}

// Translate maps a local point ignoring rotation
func (t Transform) Translate(lx, ly float64) (float64, float64) {
	return t.X + lx, t.Y + ly
}
