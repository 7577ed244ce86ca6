package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/slicer/constants"
)

// sliceTone is a sine whose pitch and gain both fall exponentially over the cue
type sliceTone struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// SliceTone creates the slice cue starting at freq Hz
// Pitch ends at half of freq, gain ramps from 0.3 to 0.01
func SliceTone(freq float64, rate beep.SampleRate) beep.Streamer {
	return &sliceTone{
		freq:     freq,
		duration: rate.N(constants.SliceSoundDuration),
		rate:     rate,
	}
}

func (s *sliceTone) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.duration {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.duration {
			return i, true
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.freq * math.Pow(constants.SliceFrequencyDrop, progress)
		gain := constants.SliceStartGain * math.Pow(constants.SliceEndGain/constants.SliceStartGain, progress)

		val := math.Sin(2*math.Pi*s.phase) * gain
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		if s.phase >= 1 {
			s.phase -= 1
		}
		s.position++
	}
	return len(samples), true
}

func (s *sliceTone) Err() error {
	return nil
}
