package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/slicer/core"
)

// TestBurstCreatesRadialParticles verifies count, spacing and speed of one burst
func TestBurstCreatesRadialParticles(t *testing.T) {
	s, _, _ := newTestSession()
	particles := NewParticleSystem()
	color := core.RGB{R: 255, G: 59, B: 48}

	particles.Burst(s, 100, 200, color)

	if len(s.Particles) != 15 {
		t.Fatalf("Expected 15 particles, got %d", len(s.Particles))
	}

	for i, p := range s.Particles {
		if p.X != 100 || p.Y != 200 {
			t.Errorf("Particle %d: expected origin (100, 200), got (%f, %f)", i, p.X, p.Y)
		}
		if p.Life != 1 || p.Color != color {
			t.Errorf("Particle %d: expected full life and burst color", i)
		}

		speed := math.Hypot(p.VX, p.VY)
		if speed < 2 || speed >= 6 {
			t.Errorf("Particle %d: speed %f outside [2, 6)", i, speed)
		}

		want := 2 * math.Pi * float64(i) / 15
		got := math.Atan2(p.VY, p.VX)
		if got < 0 {
			got += 2 * math.Pi
		}
		if math.Abs(got-want) > 1e-9 && math.Abs(got-want-2*math.Pi) > 1e-9 {
			t.Errorf("Particle %d: angle %f, want %f", i, got, want)
		}
	}
}

// TestParticlesExpireWithinFiftyFrames verifies the life decrement and removal
func TestParticlesExpireWithinFiftyFrames(t *testing.T) {
	s, _, _ := newTestSession()
	particles := NewParticleSystem()
	particles.Burst(s, 400, 300, core.RGBWhite)

	for frame := 1; frame <= 49; frame++ {
		particles.Advance(s)
		if len(s.Particles) != 15 {
			t.Fatalf("Frame %d: expected 15 particles alive, got %d", frame, len(s.Particles))
		}
	}

	life := s.Particles[0].Life
	if math.Abs(life-0.02) > 1e-9 {
		t.Errorf("Expected life 0.02 after 49 frames, got %f", life)
	}

	particles.Advance(s)
	if len(s.Particles) != 0 {
		t.Errorf("Expected all particles removed after 50 frames, got %d", len(s.Particles))
	}
}

// TestParticleGravity verifies integration order: move, then accelerate
func TestParticleGravity(t *testing.T) {
	s, _, _ := newTestSession()
	particles := NewParticleSystem()
	particles.Burst(s, 0, 0, core.RGBWhite)

	first := s.Particles[0] // angle 0: moving right
	particles.Advance(s)
	got := s.Particles[0]

	if got.X != first.VX || got.Y != first.VY {
		t.Errorf("Expected position to advance by initial velocity")
	}
	if math.Abs(got.VY-(first.VY+0.2)) > 1e-12 {
		t.Errorf("Expected VY increased by 0.2, got %f -> %f", first.VY, got.VY)
	}
}

// TestParticlesIndependentOfObjects verifies particles keep animating with no objects and while paused
func TestParticlesIndependentOfObjects(t *testing.T) {
	s, _, _ := newTestSession()
	particles := NewParticleSystem()
	particles.Burst(s, 10, 10, core.RGBWhite)
	s.SetPlaying(false)

	particles.Update(s, testEpoch)
	if len(s.Particles) != 15 || s.Particles[0].Life >= 1 {
		t.Error("Expected particles to advance regardless of play state")
	}
}
