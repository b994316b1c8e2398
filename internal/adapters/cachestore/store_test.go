package cachestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wflang/docvet/internal/adapters/cachestore"
	"github.com/wflang/docvet/internal/core/domain"
)

func TestStore_MissingFileYieldsEmptyCache(t *testing.T) {
	store := cachestore.NewStore(filepath.Join(t.TempDir(), "validation_cache.json"))

	cache, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, cache.Files)
	assert.NotNil(t, cache.Files)
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "_meta", "validation_cache.json")
	store := cachestore.NewStore(path)

	cache := domain.NewCache()
	cache.WFLVersion = "wfl 25.8.1"
	cache.LastFullValidation = "2026-08-29T10:00:00Z"
	cache.Files["docs/hello.wfl"] = domain.CacheEntry{
		ContentHash:      "sha256:abc",
		LastValidated:    "2026-08-29T10:00:00Z",
		ValidationResult: "pass",
		ValidationTimeMS: 42.5,
		LayersPassed:     []domain.Layer{domain.LayerParse, domain.LayerAnalyze},
	}

	require.NoError(t, store.Save(cache))

	// A fresh store instance must see the persisted state.
	loaded, err := cachestore.NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "wfl 25.8.1", loaded.WFLVersion)

	entry, ok := loaded.Entry("docs/hello.wfl")
	require.True(t, ok)
	assert.Equal(t, "sha256:abc", entry.ContentHash)
	assert.Equal(t, "pass", entry.ValidationResult)
	assert.Equal(t, []domain.Layer{domain.LayerParse, domain.LayerAnalyze}, entry.LayersPassed)
}

func TestStore_SaveReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validation_cache.json")
	store := cachestore.NewStore(path)

	first := domain.NewCache()
	first.Files["docs/a.wfl"] = domain.CacheEntry{ContentHash: "sha256:a"}
	require.NoError(t, store.Save(first))

	second := domain.NewCache()
	second.Files["docs/b.wfl"] = domain.CacheEntry{ContentHash: "sha256:b"}
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	_, hasA := loaded.Entry("docs/a.wfl")
	assert.False(t, hasA, "save is last-writer-wins, no merge")
	_, hasB := loaded.Entry("docs/b.wfl")
	assert.True(t, hasB)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validation_cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := cachestore.NewStore(path).Load()
	assert.Error(t, err)
}
