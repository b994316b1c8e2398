package domain

import "time"

// CacheEntry records the last validation of a single file.
type CacheEntry struct {
	ContentHash      string  `json:"content_hash"`
	LastValidated    string  `json:"last_validated"`
	ValidationResult string  `json:"validation_result"`
	ValidationTimeMS float64 `json:"validation_time_ms"`
	LayersPassed     []Layer `json:"layers_passed"`
}

// ValidatedAt parses the entry's timestamp. The zero time and false are
// returned when the timestamp is missing or unparseable; callers treat that
// as stale.
func (e CacheEntry) ValidatedAt() (time.Time, bool) {
	if e.LastValidated == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, e.LastValidated)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Cache is the persisted validation cache. One run is its single writer;
// CI runs read but never write it.
type Cache struct {
	WFLVersion         string                `json:"wfl_version,omitempty"`
	LastFullValidation string                `json:"last_full_validation,omitempty"`
	Files              map[string]CacheEntry `json:"files"`
}

// NewCache returns an empty cache with an initialized file map.
func NewCache() Cache {
	return Cache{Files: make(map[string]CacheEntry)}
}

// Entry looks up the cache entry for a path.
func (c Cache) Entry(path string) (CacheEntry, bool) {
	e, ok := c.Files[path]
	return e, ok
}
