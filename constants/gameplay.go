package constants

import (
	"math"
	"time"
)

// Object Pool
const (
	// ObjectGravity is added to an object's vertical velocity every frame
	ObjectGravity = 0.5

	// ObjectMinSize and ObjectSizeRange bound spawn size to [40, 70)
	ObjectMinSize   = 40.0
	ObjectSizeRange = 30.0

	// ObjectMinLaunchSpeed and ObjectLaunchSpeedRange bound upward velocity to (-18, -12]
	ObjectMinLaunchSpeed   = 12.0
	ObjectLaunchSpeedRange = 6.0

	// ObjectDriftRange is the full width of the horizontal drift interval centered on zero
	ObjectDriftRange = 4.0

	// ObjectSpinRange is the full width of the rotation speed interval centered on zero
	ObjectSpinRange = 0.2

	// CullMargin is how far past the surface edges an object may travel before removal
	CullMargin = 100.0

	// SpawnInterval is the minimum time between two spawns while playing
	SpawnInterval = 800 * time.Millisecond

	// SplitLifetime is how long a split object keeps decaying before removal
	SplitLifetime = 1000 * time.Millisecond
)

// Split fragments
const (
	// FragmentMinSpeed and FragmentSpeedRange bound fragment horizontal speed magnitude to [3, 5)
	FragmentMinSpeed   = 3.0
	FragmentSpeedRange = 2.0

	// FragmentLift is subtracted from the parent's vertical velocity
	FragmentLift = 2.0

	// FragmentSpin is the magnitude of fragment rotation speed, negated for the left half
	FragmentSpin = 0.3
)

// Particle Pool
const (
	// BurstSize is the number of particles created per slice
	BurstSize = 15

	// ParticleMinSpeed and ParticleSpeedRange bound outward speed to [2, 6)
	ParticleMinSpeed   = 2.0
	ParticleSpeedRange = 4.0

	// ParticleGravity is added to a particle's vertical velocity every frame
	ParticleGravity = 0.2

	// ParticleDecay is subtracted from particle life every frame
	ParticleDecay = 0.02

	// ParticleRadius is the drawn disc radius in surface units
	ParticleRadius = 3.0
)

// Trail
const (
	// TrailCapacity is the maximum number of buffered pointer samples
	TrailCapacity = 20

	// TrailLifetime is the age past which a trail point is pruned
	TrailLifetime = 200 * time.Millisecond
)

// Scoring
const (
	// PointsPerCombo is multiplied by the combo count on every hit
	PointsPerCombo = 10

	// ComboWindow is the idle time after which the combo resets
	ComboWindow = 1000 * time.Millisecond
)

// FullTurn is one rotation in radians
const FullTurn = 2 * math.Pi
