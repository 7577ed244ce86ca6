package vmath

import "math"

// Distance returns the Euclidean distance between two points
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// DistanceSq returns squared distance without sqrt
func DistanceSq(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return dx*dx + dy*dy
}

// Rotate rotates vector by angle in radians, clockwise on a y-down surface
func Rotate(x, y, angle float64) (rx, ry float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

// Polar returns the vector of given length pointing at angle
func Polar(angle, length float64) (x, y float64) {
	sin, cos := math.Sincos(angle)
	return cos * length, sin * length
}
