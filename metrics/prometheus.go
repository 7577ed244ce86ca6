package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var defaultFrameBuckets = []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.032, 0.064}

// Manager owns the session metrics and implements engine.StatsRecorder
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      prometheus.Labels
	registry         *prometheus.Registry

	objectsSpawned   *prometheus.CounterVec
	slices           prometheus.Counter
	particlesEmitted prometheus.Counter
	frames           prometheus.Counter
	frameDuration    prometheus.Histogram
	maxCombo         prometheus.Gauge

	mu      sync.Mutex
	topHits int
}

// NewManager creates a metrics manager on a fresh private registry unless one is given
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "slicer",
		subsystem:        "session",
		histogramBuckets: defaultFrameBuckets,
		enabled:          true,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.objectsSpawned = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "objects_spawned_total",
		Help:        "Objects launched, by catalog category",
		ConstLabels: m.constLabels,
	}, []string{"category"})

	m.slices = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "slices_total",
		Help:        "Objects sliced by the pointer",
		ConstLabels: m.constLabels,
	})

	m.particlesEmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "particles_emitted_total",
		Help:        "Burst particles created",
		ConstLabels: m.constLabels,
	})

	m.frames = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "frames_total",
		Help:        "Frames driven",
		ConstLabels: m.constLabels,
	})

	m.frameDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "frame_duration_seconds",
		Help:        "Wall time spent simulating and drawing one frame",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.maxCombo = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "max_combo",
		Help:        "Highest combo reached",
		ConstLabels: m.constLabels,
	})
}

// Registry returns the registry the metrics live on
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// ObjectSpawned counts a launch
func (m *Manager) ObjectSpawned(category string) {
	if !m.enabled {
		return
	}
	m.objectsSpawned.WithLabelValues(category).Inc()
}

// ObjectSliced counts a hit and tracks the highest combo
func (m *Manager) ObjectSliced(combo int) {
	if !m.enabled {
		return
	}
	m.slices.Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	if combo > m.topHits {
		m.topHits = combo
		m.maxCombo.Set(float64(combo))
	}
}

// ParticlesEmitted counts burst particles
func (m *Manager) ParticlesEmitted(count int) {
	if !m.enabled || count <= 0 {
		return
	}
	m.particlesEmitted.Add(float64(count))
}

// FrameCompleted counts a frame and observes its duration
func (m *Manager) FrameCompleted(elapsed time.Duration) {
	if !m.enabled {
		return
	}
	m.frames.Inc()
	m.frameDuration.Observe(elapsed.Seconds())
}
