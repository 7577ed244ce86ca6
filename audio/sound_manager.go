package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/slicer/constants"
)

type speakerState int

const (
	speakerIdle speakerState = iota
	speakerReady
	speakerFailed
	speakerClosed
)

// backend is the output device, swapped in tests
type backend struct {
	init  func(beep.SampleRate, int) error
	play  func(...beep.Streamer)
	close func()
}

var speakerBackend = backend{
	init:  speaker.Init,
	play:  speaker.Play,
	close: speaker.Close,
}

// SoundManager plays slice cues on the shared speaker
// The speaker is opened on the first cue and never reopened after a failure
type SoundManager struct {
	mu     sync.Mutex
	cfg    AudioConfig
	rate   beep.SampleRate
	state  speakerState
	out    backend
	log    zerolog.Logger
	played uint64
}

// NewSoundManager creates a sound manager, no device is opened yet
func NewSoundManager(cfg AudioConfig, log zerolog.Logger) *SoundManager {
	return newSoundManager(cfg, log, speakerBackend)
}

func newSoundManager(cfg AudioConfig, log zerolog.Logger, out backend) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constants.DefaultSampleRate
	}
	return &SoundManager{
		cfg:  cfg,
		rate: beep.SampleRate(cfg.SampleRate),
		out:  out,
		log:  log.With().Str("component", "audio").Logger(),
	}
}

// PlaySlice queues a slice cue at frequency Hz and returns immediately
func (sm *SoundManager) PlaySlice(frequency float64) {
	if !sm.cfg.Enabled {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ensureSpeaker() {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			sm.fail(fmt.Errorf("play panicked: %v", r))
		}
	}()

	sm.out.play(sm.withVolume(SliceTone(frequency, sm.rate)))
	sm.played++
}

// ensureSpeaker opens the device once, caller holds mu
func (sm *SoundManager) ensureSpeaker() bool {
	switch sm.state {
	case speakerReady:
		return true
	case speakerFailed, speakerClosed:
		return false
	}

	if err := sm.out.init(sm.rate, sm.rate.N(constants.SpeakerBuffer)); err != nil {
		sm.fail(err)
		return false
	}
	sm.state = speakerReady
	sm.log.Debug().Int("sample_rate", int(sm.rate)).Msg("speaker initialized")
	return true
}

// fail switches to silent mode and logs the cause once
func (sm *SoundManager) fail(err error) {
	if sm.state == speakerFailed {
		return
	}
	sm.state = speakerFailed
	sm.log.Warn().Err(err).Msg("audio unavailable, continuing silently")
}

// withVolume applies the master volume, full volume passes through
func (sm *SoundManager) withVolume(s beep.Streamer) beep.Streamer {
	v := sm.cfg.MasterVolume
	if v >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(v, 1e-6)),
		Silent:   v <= 0,
	}
}

// Played returns the number of cues handed to the speaker
func (sm *SoundManager) Played() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// Close releases the speaker, later cues are dropped
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.state == speakerReady {
		sm.out.close()
	}
	sm.state = speakerClosed
}
