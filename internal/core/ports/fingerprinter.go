package ports

// Fingerprinter computes content digests for change detection.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a digest of the file's bytes, tagged with the
	// algorithm name (for example "sha256:<hex>"). Identical bytes always
	// yield the identical digest.
	Fingerprint(path string) (string, error)
}
