package engine

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/slicer/components"
)

// Session owns all mutable state of one play session
// Every per-frame pass and input handler receives it explicitly; access is single-threaded
type Session struct {
	ID string

	// Surface size in surface units
	Width, Height float64

	// Live pools
	Objects   []*components.FallingObject
	Particles []components.Particle
	Trail     []components.TrailPoint

	// Pointer state (last two samples)
	PointerX, PointerY         float64
	PrevPointerX, PrevPointerY float64

	// LastSpawn is zero until the first spawn so the first playing frame spawns immediately
	LastSpawn time.Time

	Clock Clock
	Rand  *rand.Rand
	Sound SoundPlayer
	Stats StatsRecorder
	Log   zerolog.Logger

	score        int
	combo        int
	lastComboHit time.Time
	playing      bool
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the session time source
func WithClock(c Clock) Option {
	return func(s *Session) {
		if c != nil {
			s.Clock = c
		}
	}
}

// WithSeed makes the session RNG deterministic
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand sets the session RNG
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.Rand = r
		}
	}
}

// WithSound sets the audio cue sink
func WithSound(p SoundPlayer) Option {
	return func(s *Session) {
		if p != nil {
			s.Sound = p
		}
	}
}

// WithStats sets the counters sink
func WithStats(r StatsRecorder) Option {
	return func(s *Session) {
		if r != nil {
			s.Stats = r
		}
	}
}

// WithLogger sets the session logger, tagged with the session id
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.Log = l
	}
}

// NewSession creates a stopped session for a surface of the given size
func NewSession(width, height float64, opts ...Option) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Width:     width,
		Height:    height,
		Objects:   make([]*components.FallingObject, 0, 32),
		Particles: make([]components.Particle, 0, 128),
		Trail:     make([]components.TrailPoint, 0, 24),
		Clock:     NewTimeProvider(),
		Rand:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Sound:     silentSound{},
		Stats:     nopStats{},
		Log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Log = s.Log.With().Str("session", s.ID).Logger()
	return s
}

// ===== CONTROL SURFACE =====

// IsPlaying reports whether spawning, trail recording and scoring are active
func (s *Session) IsPlaying() bool {
	return s.playing
}

// SetPlaying toggles play; pausing leaves in-flight objects and particles animating
func (s *Session) SetPlaying(playing bool) {
	if s.playing == playing {
		return
	}
	s.playing = playing
	s.Log.Info().Bool("playing", playing).Int("score", s.score).Msg("play state changed")
}

// Score returns the running score
func (s *Session) Score() int {
	return s.score
}

// ResetScore sets the score back to zero
func (s *Session) ResetScore() {
	s.score = 0
}

// Start resets the score and begins playing
func (s *Session) Start() {
	s.ResetScore()
	s.SetPlaying(true)
}

// Resize updates the surface size, live entities keep their positions
func (s *Session) Resize(width, height float64) {
	s.Width = width
	s.Height = height
}

// ===== SCORING STATE =====

// Combo returns the consecutive hit count
func (s *Session) Combo() int {
	return s.combo
}

// LastComboHit returns the time of the most recent hit
func (s *Session) LastComboHit() time.Time {
	return s.lastComboHit
}

// BumpCombo increments the combo, stamps activity and returns the new count
func (s *Session) BumpCombo(now time.Time) int {
	s.combo++
	s.lastComboHit = now
	return s.combo
}

// ResetCombo drops the combo to zero
func (s *Session) ResetCombo() {
	s.combo = 0
}

// AddScore accumulates points, the score never goes below zero
func (s *Session) AddScore(points int) {
	if points <= 0 {
		return
	}
	s.score += points
}
