// Package fs provides filesystem-backed adapters.
package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/wflang/docvet/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter computes tagged SHA-256 content digests. The digest is a
// change-detection signal, not a security boundary; SHA-256 is used because
// the cache file schema stores a 256-bit tagged digest.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Fingerprint returns the "sha256:<hex>" digest of the file's content.
func (f *Fingerprinter) Fingerprint(path string) (string, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return "sha256:" + hex.EncodeToString(hasher.Sum(nil)), nil
}

// Sum computes the tagged digest of an in-memory byte slice.
func Sum(data []byte) string {
	digest := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(digest[:])
}
