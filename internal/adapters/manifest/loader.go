// Package manifest loads the per-example configuration file.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/wflang/docvet/internal/core/domain"
	"github.com/wflang/docvet/internal/core/ports"
	"go.trai.ch/zerr"
)

// reservedMarker prefixes schema metadata keys; those keys are never
// iterated as examples.
const reservedMarker = "$"

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader using a JSON file.
type Loader struct {
	path   string
	logger ports.Logger
}

// NewLoader creates a manifest loader for the given file path.
func NewLoader(path string, logger ports.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Load reads and normalizes the manifest. Schema metadata keys are dropped.
func (l *Loader) Load() (domain.Manifest, error) {
	data, err := os.ReadFile(l.path) //nolint:gosec // path comes from configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrManifestNotFound, "run docvet from the repository root"),
				"path", l.path,
			)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", l.path)
	}

	var raw map[string]domain.ManifestEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", l.path)
	}

	m := make(domain.Manifest, len(raw))
	for path, entry := range raw {
		if strings.HasPrefix(path, reservedMarker) {
			continue
		}
		l.checkEntry(path, entry)
		m[path] = entry
	}

	return m, nil
}

// checkEntry warns about configurations that degrade at run time. A negative
// example with an expected failure layer but no pattern can never pass, so
// the corpus maintainer should hear about it up front.
func (l *Loader) checkEntry(path string, entry domain.ManifestEntry) {
	for _, layer := range entry.ValidateLayers {
		if !layer.Valid() {
			l.logger.Warn(fmt.Sprintf("%s: unknown validation layer %d", path, int(layer)))
		}
	}
	if entry.IsErrorExample() && entry.ExpectedFailureLayer != 0 && entry.ExpectedErrorPattern == "" {
		l.logger.Warn(fmt.Sprintf("%s: expected_failure_layer set without expected_error_pattern", path))
	}
}
