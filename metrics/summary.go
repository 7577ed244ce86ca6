package metrics

import (
	"fmt"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
)

// Summary is a point-in-time reading of the session metrics
type Summary struct {
	Spawned   map[string]uint64
	Slices    uint64
	Particles uint64
	Frames    uint64
	MaxCombo  int
	MeanFrame time.Duration
}

// Snapshot gathers the registry into a Summary
func (m *Manager) Snapshot() (Summary, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return Summary{}, fmt.Errorf("gather metrics: %w", err)
	}

	s := Summary{Spawned: make(map[string]uint64)}
	prefix := m.namespace + "_" + m.subsystem + "_"

	for _, fam := range families {
		for _, metric := range fam.GetMetric() {
			switch fam.GetName() {
			case prefix + "objects_spawned_total":
				s.Spawned[labelValue(metric, "category")] = uint64(metric.GetCounter().GetValue())
			case prefix + "slices_total":
				s.Slices = uint64(metric.GetCounter().GetValue())
			case prefix + "particles_emitted_total":
				s.Particles = uint64(metric.GetCounter().GetValue())
			case prefix + "frames_total":
				s.Frames = uint64(metric.GetCounter().GetValue())
			case prefix + "max_combo":
				s.MaxCombo = int(metric.GetGauge().GetValue())
			case prefix + "frame_duration_seconds":
				h := metric.GetHistogram()
				if n := h.GetSampleCount(); n > 0 {
					s.MeanFrame = time.Duration(h.GetSampleSum() / float64(n) * float64(time.Second))
				}
			}
		}
	}
	return s, nil
}

func labelValue(metric *dto.Metric, name string) string {
	for _, lp := range metric.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

// TotalSpawned sums launches over all categories
func (s Summary) TotalSpawned() uint64 {
	var total uint64
	for _, n := range s.Spawned {
		total += n
	}
	return total
}

// MarshalZerologObject writes the summary as log fields
func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("spawned", s.TotalSpawned()).
		Uint64("slices", s.Slices).
		Uint64("particles", s.Particles).
		Uint64("frames", s.Frames).
		Int("max_combo", s.MaxCombo).
		Dur("mean_frame", s.MeanFrame)
}
