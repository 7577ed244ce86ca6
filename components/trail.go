package components

import "time"

// TrailPoint is a timestamped pointer sample
type TrailPoint struct {
	X, Y float64
	Time time.Time
}

// Age returns time elapsed since the sample
func (p TrailPoint) Age(now time.Time) time.Duration {
	return now.Sub(p.Time)
}
