package audio

import "github.com/lixenwraith/slicer/constants"

// AudioConfig holds audio output settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
}

// DefaultAudioConfig returns audio enabled at full volume
func DefaultAudioConfig() AudioConfig {
	return AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		SampleRate:   constants.DefaultSampleRate,
	}
}
