package constants

import "time"

// Slice Sound
const (
	// SliceSoundDuration is the length of one slice cue
	SliceSoundDuration = 100 * time.Millisecond

	// SliceBaseFrequency and SliceFrequencyRange randomize cue pitch to [600, 1000) Hz
	SliceBaseFrequency  = 600.0
	SliceFrequencyRange = 400.0

	// SliceFrequencyDrop is the frequency ratio reached at the end of the cue
	SliceFrequencyDrop = 0.5

	// SliceStartGain and SliceEndGain are the envelope endpoints of the cue
	SliceStartGain = 0.3
	SliceEndGain   = 0.01
)

// Audio Output
const (
	// DefaultSampleRate is the speaker sample rate when none is configured
	DefaultSampleRate = 44100

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)
