// Package cachestore persists the validation cache as a flat JSON file.
package cachestore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/wflang/docvet/internal/core/domain"
	"github.com/wflang/docvet/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore using a single JSON file. One run is
// the only writer; concurrent pipeline invocations against the same file
// are unsupported.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a cache store backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Load reads the persisted cache. A missing or empty file yields an empty
// cache so that a first run validates everything.
func (s *Store) Load() (domain.Cache, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewCache(), nil
		}
		return domain.Cache{}, zerr.Wrap(err, "failed to read validation cache")
	}

	if len(data) == 0 {
		return domain.NewCache(), nil
	}

	var cache domain.Cache
	if err := json.Unmarshal(data, &cache); err != nil {
		return domain.Cache{}, zerr.Wrap(err, "failed to unmarshal validation cache")
	}
	if cache.Files == nil {
		cache.Files = make(map[string]domain.CacheEntry)
	}

	return cache, nil
}

// Save writes the cache, replacing the previous file contents.
func (s *Store) Save(cache domain.Cache) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal validation cache")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for validation cache")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write validation cache")
	}

	return nil
}
