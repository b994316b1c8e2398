package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wflang/docvet/internal/core/domain"
)

func TestLayer_Ordering(t *testing.T) {
	require.Len(t, domain.AllLayers, 5)
	for i := 1; i < len(domain.AllLayers); i++ {
		assert.Less(t, domain.AllLayers[i-1], domain.AllLayers[i])
	}
	assert.Equal(t, 1, int(domain.LayerParse))
	assert.Equal(t, 5, int(domain.LayerExecute))
}

func TestLayer_String(t *testing.T) {
	assert.Equal(t, "parse", domain.LayerParse.String())
	assert.Equal(t, "analyze", domain.LayerAnalyze.String())
	assert.Equal(t, "typecheck", domain.LayerTypeCheck.String())
	assert.Equal(t, "lint", domain.LayerLint.String())
	assert.Equal(t, "execute", domain.LayerExecute.String())
	assert.Equal(t, "layer(9)", domain.Layer(9).String())
}

func TestLayer_Valid(t *testing.T) {
	for _, l := range domain.AllLayers {
		assert.True(t, l.Valid())
	}
	assert.False(t, domain.Layer(0).Valid())
	assert.False(t, domain.Layer(6).Valid())
}

func TestManifestEntry_Defaults(t *testing.T) {
	var entry domain.ManifestEntry

	assert.Equal(t, domain.AllLayers, entry.Layers())
	assert.Equal(t, 30*time.Second, entry.Timeout())
	assert.False(t, entry.IsErrorExample())
	assert.Equal(t, 0, entry.ExpectedExitCode)
}

func TestManifestEntry_Overrides(t *testing.T) {
	entry := domain.ManifestEntry{
		ValidateLayers: []domain.Layer{domain.LayerParse, domain.LayerAnalyze},
		Kind:           domain.KindErrorExample,
		TimeoutSeconds: 5,
	}

	assert.Equal(t, []domain.Layer{domain.LayerParse, domain.LayerAnalyze}, entry.Layers())
	assert.Equal(t, 5*time.Second, entry.Timeout())
	assert.True(t, entry.IsErrorExample())
}

func TestManifest_PathsSorted(t *testing.T) {
	m := domain.Manifest{
		"docs/b.wfl": {},
		"docs/a.wfl": {},
		"docs/c.wfl": {},
	}

	assert.Equal(t, []string{"docs/a.wfl", "docs/b.wfl", "docs/c.wfl"}, m.Paths())
}

func TestCacheEntry_ValidatedAt(t *testing.T) {
	entry := domain.CacheEntry{LastValidated: "2026-08-20T10:00:00Z"}
	at, ok := entry.ValidatedAt()
	require.True(t, ok)
	assert.Equal(t, 2026, at.Year())

	_, ok = domain.CacheEntry{LastValidated: "not a timestamp"}.ValidatedAt()
	assert.False(t, ok)

	_, ok = domain.CacheEntry{}.ValidatedAt()
	assert.False(t, ok)
}

func TestOutcome_DurationMS(t *testing.T) {
	o := domain.Outcome{Duration: 1500 * time.Millisecond}
	assert.InDelta(t, 1500.0, o.DurationMS(), 0.001)
}
