package core

// Kinetic is the motion state of a simulated body in surface units per frame
type Kinetic struct {
	X, Y   float64
	VX, VY float64

	// Rotation in radians, RotationSpeed in radians per frame
	Rotation      float64
	RotationSpeed float64
}
