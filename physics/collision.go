package physics

import (
	"github.com/lixenwraith/slicer/vmath"
)

// WithinRadius reports whether point (px, py) lies strictly inside radius of (cx, cy)
func WithinRadius(px, py, cx, cy, radius float64) bool {
	return vmath.DistanceSq(px, py, cx, cy) < radius*radius
}

// OutOfBounds reports whether a body left the surface by more than margin on the bottom, left or right
// The top edge is open: launched bodies always fall back under gravity
func OutOfBounds(x, y, width, height, margin float64) bool {
	return y > height+margin || x < -margin || x > width+margin
}
