// Package pipeline implements the layered validation pipeline: the
// staleness decider and the per-file layer state machine.
package pipeline

import (
	"time"

	"github.com/wflang/docvet/internal/core/domain"
	"github.com/wflang/docvet/internal/core/ports"
)

// FreshnessWindow is the maximum age of a cache entry before a file is
// revalidated even when its content is unchanged. It defends against silent
// toolchain drift.
const FreshnessWindow = 7 * 24 * time.Hour

// StalenessDecider decides whether a file must be revalidated this run.
type StalenessDecider struct {
	fingerprinter ports.Fingerprinter
	now           func() time.Time
}

// NewStalenessDecider creates a decider using the given fingerprinter.
func NewStalenessDecider(fingerprinter ports.Fingerprinter) *StalenessDecider {
	return &StalenessDecider{
		fingerprinter: fingerprinter,
		now:           time.Now,
	}
}

// NeedsValidation reports whether the file at absPath (keyed by relPath in
// both manifest and cache) must be validated. Every failure mode is
// fail-safe: when in doubt, validate.
func (d *StalenessDecider) NeedsValidation(absPath, relPath string, m domain.Manifest, cache domain.Cache) bool {
	if _, ok := m[relPath]; !ok {
		return true
	}

	entry, ok := cache.Entry(relPath)
	if !ok {
		return true
	}

	current, err := d.fingerprinter.Fingerprint(absPath)
	if err != nil {
		return true
	}
	if current != entry.ContentHash {
		return true
	}

	validatedAt, ok := entry.ValidatedAt()
	if !ok {
		return true
	}
	if d.now().Sub(validatedAt) > FreshnessWindow {
		return true
	}

	return false
}
