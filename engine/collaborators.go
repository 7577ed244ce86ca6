package engine

import "time"

// SoundPlayer emits audible cues, implementations must return without waiting for playback
type SoundPlayer interface {
	PlaySlice(frequency float64)
}

// StatsRecorder receives session counters
type StatsRecorder interface {
	ObjectSpawned(category string)
	ObjectSliced(combo int)
	ParticlesEmitted(count int)
	FrameCompleted(elapsed time.Duration)
}

type silentSound struct{}

func (silentSound) PlaySlice(float64) {}

type nopStats struct{}

func (nopStats) ObjectSpawned(string)         {}
func (nopStats) ObjectSliced(int)             {}
func (nopStats) ParticlesEmitted(int)         {}
func (nopStats) FrameCompleted(time.Duration) {}
