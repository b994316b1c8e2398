package domain

import "time"

// Outcome is the immutable result of validating one file in one run.
type Outcome struct {
	// Path is the repository-relative path of the validated file.
	Path string
	// Success reports whether the file passed validation. A negative
	// example that failed at its expected layer with a matching diagnostic
	// counts as a success.
	Success bool
	// Layer is the layer at which the run terminated, or the last layer on
	// success.
	Layer Layer
	// Error carries the diagnostic text when the run failed.
	Error string
	// LayersPassed lists the layers that actually completed, in order.
	LayersPassed []Layer
	// Duration is the wall-clock time spent validating the file.
	Duration time.Duration
}

// DurationMS returns the duration in milliseconds, the unit persisted in
// the cache file.
func (o Outcome) DurationMS() float64 {
	return float64(o.Duration) / float64(time.Millisecond)
}
