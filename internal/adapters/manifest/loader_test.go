package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wflang/docvet/internal/adapters/manifest"
	"github.com/wflang/docvet/internal/core/domain"
	"github.com/wflang/docvet/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_SchemaKeysExcluded(t *testing.T) {
	path := writeManifest(t, `{
		"$schema": {},
		"$comment": {},
		"docs/hello.wfl": {"validate_layers": [1, 2, 5], "type": "executable"}
	}`)

	m, err := manifest.NewLoader(path, quietLogger(t)).Load()
	require.NoError(t, err)

	assert.Len(t, m, 1)
	entry, ok := m["docs/hello.wfl"]
	require.True(t, ok)
	assert.Equal(t, []domain.Layer{domain.LayerParse, domain.LayerAnalyze, domain.LayerExecute}, entry.ValidateLayers)
}

func TestLoader_EntryFields(t *testing.T) {
	path := writeManifest(t, `{
		"docs/bad.wfl": {
			"type": "error_example",
			"expected_failure_layer": 1,
			"expected_error_pattern": "unexpected token",
			"timeout_seconds": 10,
			"expected_exit_code": 2,
			"skip_execution": true
		}
	}`)

	m, err := manifest.NewLoader(path, quietLogger(t)).Load()
	require.NoError(t, err)

	entry := m["docs/bad.wfl"]
	assert.Equal(t, domain.KindErrorExample, entry.Kind)
	assert.Equal(t, domain.LayerParse, entry.ExpectedFailureLayer)
	assert.Equal(t, "unexpected token", entry.ExpectedErrorPattern)
	assert.Equal(t, 10, entry.TimeoutSeconds)
	assert.Equal(t, 2, entry.ExpectedExitCode)
	assert.True(t, entry.SkipExecution)
}

func TestLoader_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")

	_, err := manifest.NewLoader(path, quietLogger(t)).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManifestNotFound))
}

func TestLoader_InvalidJSON(t *testing.T) {
	path := writeManifest(t, `{"docs/a.wfl": `)

	_, err := manifest.NewLoader(path, quietLogger(t)).Load()
	assert.Error(t, err)
}

func TestLoader_WarnsOnMissingPattern(t *testing.T) {
	path := writeManifest(t, `{
		"docs/bad.wfl": {"type": "error_example", "expected_failure_layer": 2}
	}`)

	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := manifest.NewLoader(path, log).Load()
	require.NoError(t, err)
}
