// Package wiring assembles the application from its adapters.
package wiring

import (
	"io"

	"github.com/wflang/docvet/internal/adapters/cachestore"
	"github.com/wflang/docvet/internal/adapters/config"
	"github.com/wflang/docvet/internal/adapters/console"
	"github.com/wflang/docvet/internal/adapters/fs"
	"github.com/wflang/docvet/internal/adapters/logger"
	"github.com/wflang/docvet/internal/adapters/manifest"
	"github.com/wflang/docvet/internal/adapters/toolchain"
	"github.com/wflang/docvet/internal/app"
	"github.com/wflang/docvet/internal/engine/pipeline"
)

// BuildApp constructs a fully wired App for the given config file path.
// Resolving the toolchain binary happens here so that a missing binary
// fails the run before any file is touched.
func BuildApp(configPath string, verbose bool, stdout io.Writer) (*app.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)

	binary, err := toolchain.Resolve(cfg.ToolchainPath)
	if err != nil {
		return nil, err
	}
	tool := toolchain.NewCLI(binary, log)

	fingerprinter := fs.NewFingerprinter()
	loader := manifest.NewLoader(cfg.ManifestPath, log)
	store := cachestore.NewStore(cfg.CachePath)
	runner := pipeline.NewRunner(tool, log)
	printer := console.NewPrinter(stdout)

	return app.New(
		cfg.Root,
		cfg.ReportPath,
		loader,
		store,
		fingerprinter,
		tool,
		runner,
		printer,
		log,
	), nil
}
