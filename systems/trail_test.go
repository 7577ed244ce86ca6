package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/slicer/constants"
)

// TestRecordMoveOnlyWhilePlaying verifies trail gating and pointer tracking
func TestRecordMoveOnlyWhilePlaying(t *testing.T) {
	s, clock, _ := newTestSession()
	trail := NewTrailSystem()

	trail.RecordMove(s, 10, 20, clock.Now())
	if len(s.Trail) != 0 {
		t.Error("Stopped session must not record trail points")
	}
	if s.PointerX != 10 || s.PointerY != 20 {
		t.Error("Pointer must be tracked even when stopped")
	}

	s.SetPlaying(true)
	trail.RecordMove(s, 30, 40, clock.Now())
	if len(s.Trail) != 1 {
		t.Fatalf("Expected one trail point, got %d", len(s.Trail))
	}
	if s.PrevPointerX != 10 || s.PrevPointerY != 20 {
		t.Errorf("Expected previous pointer (10, 20), got (%f, %f)", s.PrevPointerX, s.PrevPointerY)
	}
}

// TestTrailCapacity verifies the buffer never exceeds 20 and evicts oldest first
func TestTrailCapacity(t *testing.T) {
	s, clock, _ := newTestSession()
	trail := NewTrailSystem()
	s.SetPlaying(true)

	for i := 0; i < 50; i++ {
		trail.RecordMove(s, float64(i), 0, clock.Now())
		if len(s.Trail) > constants.TrailCapacity {
			t.Fatalf("Trail grew to %d", len(s.Trail))
		}
	}

	if len(s.Trail) != 20 {
		t.Fatalf("Expected 20 points, got %d", len(s.Trail))
	}
	if s.Trail[0].X != 30 || s.Trail[19].X != 49 {
		t.Errorf("Expected points 30..49 retained, got %f..%f", s.Trail[0].X, s.Trail[19].X)
	}
}

// TestPruneExpired verifies samples older than 200ms are dropped and younger kept
func TestPruneExpired(t *testing.T) {
	s, clock, _ := newTestSession()
	trail := NewTrailSystem()
	s.SetPlaying(true)

	trail.RecordMove(s, 1, 1, clock.Now())
	clock.Advance(100 * time.Millisecond)
	trail.RecordMove(s, 2, 2, clock.Now())
	clock.Advance(100 * time.Millisecond)
	trail.RecordMove(s, 3, 3, clock.Now())

	// Oldest is exactly 200ms old: kept
	trail.Prune(s, clock.Now())
	if len(s.Trail) != 3 {
		t.Fatalf("Expected 3 points at 200ms, got %d", len(s.Trail))
	}

	clock.Advance(time.Millisecond)
	trail.Update(s, clock.Now())
	if len(s.Trail) != 2 || s.Trail[0].X != 2 {
		t.Fatalf("Expected oldest point pruned, got %v", s.Trail)
	}

	clock.Advance(time.Second)
	trail.Prune(s, clock.Now())
	if len(s.Trail) != 0 {
		t.Errorf("Expected empty trail, got %d", len(s.Trail))
	}
}

// TestPruneKeepsOrderWhenInterleaved verifies filtering never skips neighbours of removed points
func TestPruneKeepsOrderWhenInterleaved(t *testing.T) {
	s, clock, _ := newTestSession()
	trail := NewTrailSystem()
	s.SetPlaying(true)

	now := clock.Now()
	// Two adjacent expired samples followed by fresh ones
	trail.RecordMove(s, 1, 0, now.Add(-300*time.Millisecond))
	trail.RecordMove(s, 2, 0, now.Add(-250*time.Millisecond))
	trail.RecordMove(s, 3, 0, now)
	trail.RecordMove(s, 4, 0, now)

	trail.Prune(s, now)
	if len(s.Trail) != 2 || s.Trail[0].X != 3 || s.Trail[1].X != 4 {
		t.Errorf("Expected [3 4], got %v", s.Trail)
	}
}
