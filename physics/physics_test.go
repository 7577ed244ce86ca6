package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/slicer/core"
)

func TestIntegrateAppliesGravityBeforeMove(t *testing.T) {
	k := core.Kinetic{X: 10, Y: 100, VX: 2, VY: -12, Rotation: 1, RotationSpeed: 0.1}

	Integrate(&k, 0.5)

	if k.VY != -11.5 {
		t.Errorf("Expected VY -11.5, got %f", k.VY)
	}
	if k.X != 12 || k.Y != 88.5 {
		t.Errorf("Expected position (12, 88.5), got (%f, %f)", k.X, k.Y)
	}
	if math.Abs(k.Rotation-1.1) > 1e-9 {
		t.Errorf("Expected rotation 1.1, got %f", k.Rotation)
	}
}

func TestIntegrateParticleMovesBeforeGravity(t *testing.T) {
	k := core.Kinetic{X: 0, Y: 0, VX: 1, VY: -2}

	IntegrateParticle(&k, 0.2)

	if k.X != 1 || k.Y != -2 {
		t.Errorf("Expected position (1, -2), got (%f, %f)", k.X, k.Y)
	}
	if math.Abs(k.VY+1.8) > 1e-9 {
		t.Errorf("Expected VY -1.8, got %f", k.VY)
	}
}

func TestLaunchedObjectFallsBack(t *testing.T) {
	k := core.Kinetic{Y: 600, VY: -18}
	peak := k.Y
	for i := 0; i < 200; i++ {
		Integrate(&k, 0.5)
		if k.Y < peak {
			peak = k.Y
		}
	}
	if k.Y <= 600 {
		t.Errorf("Expected object to fall below launch height after 200 frames, at %f", k.Y)
	}
	if peak > 600-300 {
		t.Errorf("Expected apex near 324 units above launch, apex at %f", peak)
	}
}

func TestImpulse(t *testing.T) {
	k := core.Kinetic{VX: 1, VY: 1}
	SetImpulse(&k, -5, 0)
	if k.VX != -5 || k.VY != 0 {
		t.Errorf("SetImpulse: got (%f, %f)", k.VX, k.VY)
	}
}

func TestWithinRadius(t *testing.T) {
	if !WithinRadius(3, 4, 0, 0, 5.01) {
		t.Error("Expected point at distance 5 inside radius 5.01")
	}
	if WithinRadius(3, 4, 0, 0, 5) {
		t.Error("Distance equal to radius must not count as inside")
	}
}

func TestOutOfBounds(t *testing.T) {
	const w, h, m = 800.0, 600.0, 100.0

	cases := []struct {
		x, y float64
		out  bool
	}{
		{400, 300, false},
		{400, 700, false},
		{400, 700.5, true},
		{-100, 300, false},
		{-100.5, 300, true},
		{900.5, 300, true},
		{400, -5000, false},
	}

	for _, c := range cases {
		if got := OutOfBounds(c.x, c.y, w, h, m); got != c.out {
			t.Errorf("OutOfBounds(%v, %v) = %v, want %v", c.x, c.y, got, c.out)
		}
	}
}
