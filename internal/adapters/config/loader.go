// Package config provides the configuration loader for docvet.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when no explicit path
// is given.
const DefaultFilename = "docvet.yaml"

// Config fixes the repository layout the pipeline operates on. Every field
// has a default, so running without a config file works in a standard
// checkout.
type Config struct {
	// Root is the repository root all manifest paths are relative to.
	Root string
	// ManifestPath is the example manifest file.
	ManifestPath string
	// CachePath is the validation cache file.
	CachePath string
	// ReportPath is where --report writes its summary.
	ReportPath string
	// ToolchainPath overrides the toolchain binary location.
	ToolchainPath string
}

// configFile is the YAML layout of docvet.yaml.
type configFile struct {
	Root      string `yaml:"root"`
	Manifest  string `yaml:"manifest"`
	Cache     string `yaml:"cache"`
	Report    string `yaml:"report"`
	Toolchain string `yaml:"toolchain"`
}

// Default returns the configuration of a standard checkout: examples under
// TestPrograms/docs_examples with the manifest and cache in its _meta
// directory.
func Default() Config {
	meta := filepath.Join("TestPrograms", "docs_examples", "_meta")
	return Config{
		Root:         ".",
		ManifestPath: filepath.Join(meta, "manifest.json"),
		CachePath:    filepath.Join(meta, "validation_cache.json"),
		ReportPath:   "validation_report.json",
	}
}

// Load reads the configuration file at path, falling back to defaults for
// absent fields. A missing file yields the default configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if file.Root != "" {
		cfg.Root = file.Root
	}
	if file.Manifest != "" {
		cfg.ManifestPath = file.Manifest
	}
	if file.Cache != "" {
		cfg.CachePath = file.Cache
	}
	if file.Report != "" {
		cfg.ReportPath = file.Report
	}
	if file.Toolchain != "" {
		cfg.ToolchainPath = file.Toolchain
	}

	return cfg, nil
}
