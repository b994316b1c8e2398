package ports

import "github.com/wflang/docvet/internal/core/domain"

// ManifestLoader loads the per-example configuration. The manifest is owned
// by the corpus maintainer and read-only to the pipeline.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest, excluding schema metadata keys. It returns
	// domain.ErrManifestNotFound when the file does not exist.
	Load() (domain.Manifest, error)
}
