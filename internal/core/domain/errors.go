package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when the manifest file is missing.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrToolchainNotFound is returned when the toolchain binary cannot be
	// resolved on disk.
	ErrToolchainNotFound = zerr.New("toolchain binary not found")

	// ErrValidationFailed is returned by a run in which at least one file
	// failed validation.
	ErrValidationFailed = zerr.New("validation failed")
)
