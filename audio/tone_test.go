package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestSliceToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(SliceTone(800, rate))

	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(samples))
	}
}

func TestSliceToneEnvelope(t *testing.T) {
	samples := drain(SliceTone(800, beep.SampleRate(44100)))

	if samples[0][0] != 0 {
		t.Errorf("Cue must start at zero phase, got %v", samples[0][0])
	}

	for i, s := range samples {
		if math.Abs(s[0]) > 0.3+1e-9 {
			t.Fatalf("Sample %d exceeds start gain: %v", i, s[0])
		}
		if s[0] != s[1] {
			t.Fatalf("Sample %d channels differ", i)
		}
	}

	tail := samples[len(samples)-100:]
	for _, s := range tail {
		if math.Abs(s[0]) > 0.012 {
			t.Fatalf("Tail should be near the end gain, got %v", s[0])
		}
	}
}

func TestSliceTonePitchFalls(t *testing.T) {
	samples := drain(SliceTone(1000, beep.SampleRate(44100)))
	half := len(samples) / 2

	crossings := func(part [][2]float64) int {
		n := 0
		for i := 1; i < len(part); i++ {
			if (part[i-1][0] < 0) != (part[i][0] < 0) {
				n++
			}
		}
		return n
	}

	first, second := crossings(samples[:half]), crossings(samples[half:])
	if second >= first {
		t.Errorf("Pitch should fall: %d crossings then %d", first, second)
	}
}
