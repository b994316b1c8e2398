package ports

import "github.com/wflang/docvet/internal/core/domain"

// CacheStore persists the validation cache between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Load reads the persisted cache. A missing file yields an empty cache,
	// not an error.
	Load() (domain.Cache, error)

	// Save writes the cache back to disk, replacing the previous contents.
	Save(cache domain.Cache) error
}
