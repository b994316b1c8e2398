package domain

import (
	"sort"
	"time"
)

// ExampleKind distinguishes examples that must succeed from examples that
// are designed to fail.
type ExampleKind string

const (
	// KindExecutable is a positive example: every requested layer must pass.
	KindExecutable ExampleKind = "executable"
	// KindErrorExample is a negative example: it is expected to fail at a
	// specific layer with a diagnostic matching a configured pattern.
	KindErrorExample ExampleKind = "error_example"
)

// DefaultTimeoutSeconds bounds each external invocation when the manifest
// entry does not set its own timeout.
const DefaultTimeoutSeconds = 30

// ManifestEntry is the per-example configuration. It is authored by the
// corpus maintainer and read-only to the pipeline.
type ManifestEntry struct {
	ValidateLayers       []Layer     `json:"validate_layers,omitempty"`
	Kind                 ExampleKind `json:"type,omitempty"`
	ExpectedFailureLayer Layer       `json:"expected_failure_layer,omitempty"`
	ExpectedErrorPattern string      `json:"expected_error_pattern,omitempty"`
	TimeoutSeconds       int         `json:"timeout_seconds,omitempty"`
	ExpectedExitCode     int         `json:"expected_exit_code,omitempty"`
	SkipExecution        bool        `json:"skip_execution,omitempty"`
}

// Layers returns the requested layer set, defaulting to all five layers.
func (e ManifestEntry) Layers() []Layer {
	if len(e.ValidateLayers) == 0 {
		return AllLayers
	}
	return e.ValidateLayers
}

// Timeout returns the per-invocation timeout for this entry.
func (e ManifestEntry) Timeout() time.Duration {
	secs := e.TimeoutSeconds
	if secs <= 0 {
		secs = DefaultTimeoutSeconds
	}
	return time.Duration(secs) * time.Second
}

// IsErrorExample reports whether this entry is a negative example.
func (e ManifestEntry) IsErrorExample() bool {
	return e.Kind == KindErrorExample
}

// Manifest maps repository-relative example paths to their configuration.
type Manifest map[string]ManifestEntry

// Paths returns the manifest keys in lexicographic order so that batch
// iteration, progress numbering, and reports are deterministic.
func (m Manifest) Paths() []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
