// Package config holds the host settings of a slicing session
package config

import (
	"context"
	"time"

	"github.com/lixenwraith/slicer/constants"
)

// Config contains process configuration
type Config struct {
	// FrameInterval is the ticker period driving the frame loop
	FrameInterval time.Duration `koanf:"frame_interval"`

	// CellWidth and CellHeight are the surface units covered by one terminal cell
	CellWidth  float64 `koanf:"cell_width"`
	CellHeight float64 `koanf:"cell_height"`

	// Seed fixes the random sequence, 0 seeds from the clock
	Seed uint64 `koanf:"seed"`

	AudioEnabled bool    `koanf:"audio_enabled"`
	MasterVolume float64 `koanf:"master_volume"`
	SampleRate   int     `koanf:"sample_rate"`

	// LogEnabled writes a debug log file to LogDir, the terminal itself is never logged to
	LogEnabled bool   `koanf:"log_enabled"`
	LogLevel   string `koanf:"log_level"`
	LogDir     string `koanf:"log_dir"`

	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// New creates a Config with defaults
func New(_ context.Context) *Config {
	return &Config{
		FrameInterval:  constants.FrameUpdateInterval,
		CellWidth:      constants.CellWidth,
		CellHeight:     constants.CellHeight,
		AudioEnabled:   true,
		MasterVolume:   1.0,
		SampleRate:     constants.DefaultSampleRate,
		LogEnabled:     false,
		LogLevel:       "info",
		LogDir:         "logs",
		MetricsEnabled: true,
	}
}
