// Package app implements the application layer: the batch orchestrator
// that ties manifest, cache, pipeline, and reporting together.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wflang/docvet/internal/adapters/console"
	"github.com/wflang/docvet/internal/adapters/report"
	"github.com/wflang/docvet/internal/core/domain"
	"github.com/wflang/docvet/internal/core/ports"
	"github.com/wflang/docvet/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// Options are the run modes selected on the command line.
type Options struct {
	// Category restricts the batch to manifest paths under this prefix.
	Category string
	// File validates exactly one manifest entry, bypassing the category
	// filter and the staleness decider's batch role.
	File string
	// CI disables all cache writes, making repeated runs side-effect-free.
	CI bool
	// Force bypasses the staleness decider and revalidates everything.
	Force bool
	// UpdateManifest is accepted but reserved for future use.
	UpdateManifest bool
	// Report emits the JSON report file after the run.
	Report bool
}

// App orchestrates a validation run. Files are processed strictly
// sequentially in sorted manifest order; the app is the cache's single
// writer.
type App struct {
	root       string
	reportPath string

	manifests     ports.ManifestLoader
	store         ports.CacheStore
	fingerprinter ports.Fingerprinter
	tool          ports.Toolchain
	decider       *pipeline.StalenessDecider
	runner        *pipeline.Runner
	printer       *console.Printer
	logger        ports.Logger
	now           func() time.Time
}

// New creates an App from its collaborators. Root is the directory all
// manifest paths are relative to; reportPath is where --report writes.
func New(
	root, reportPath string,
	manifests ports.ManifestLoader,
	store ports.CacheStore,
	fingerprinter ports.Fingerprinter,
	tool ports.Toolchain,
	runner *pipeline.Runner,
	printer *console.Printer,
	logger ports.Logger,
) *App {
	return &App{
		root:          root,
		reportPath:    reportPath,
		manifests:     manifests,
		store:         store,
		fingerprinter: fingerprinter,
		tool:          tool,
		decider:       pipeline.NewStalenessDecider(fingerprinter),
		runner:        runner,
		printer:       printer,
		logger:        logger,
		now:           time.Now,
	}
}

// Run executes one validation batch. It returns domain.ErrValidationFailed
// when any file failed, and a wrapped environment error when the manifest
// is missing; per-file errors never abort the batch.
func (a *App) Run(ctx context.Context, opts Options) error {
	if opts.UpdateManifest {
		a.logger.Warn("--update-manifest is reserved and not implemented yet")
	}

	manifest, err := a.manifests.Load()
	if err != nil {
		return err
	}

	cache := domain.NewCache()
	if !opts.Force {
		cache, err = a.store.Load()
		if err != nil {
			return err
		}
	}

	a.printer.Header()

	selected := a.selectFiles(manifest, cache, opts)
	passed, failed := a.validate(ctx, manifest, selected)

	if !opts.CI {
		a.updateCache(&cache, append(append([]domain.Outcome{}, passed...), failed...))
		cache.WFLVersion = a.tool.Version(ctx)
		cache.LastFullValidation = a.now().UTC().Format(time.RFC3339)
		if err := a.store.Save(cache); err != nil {
			return err
		}
	}

	if opts.Report {
		rep := report.Build(passed, failed, a.tool.Version(ctx), a.now())
		if err := report.Write(rep, a.reportPath); err != nil {
			return err
		}
		a.printer.ReportWritten(a.reportPath)
	}

	a.printer.Summary(passed, failed)

	if len(failed) > 0 {
		return zerr.With(domain.ErrValidationFailed, "failed", len(failed))
	}
	return nil
}

// selectFiles applies single-file restriction, category filtering, and the
// staleness decider, in that order. Skipped and missing files never reach
// the runner and appear in neither result list.
func (a *App) selectFiles(manifest domain.Manifest, cache domain.Cache, opts Options) []string {
	if opts.File != "" {
		rel := filepath.ToSlash(opts.File)
		if _, ok := manifest[rel]; !ok {
			a.logger.Warn(fmt.Sprintf("%s not found in manifest", rel))
			return nil
		}
		return []string{rel}
	}

	var selected []string
	for _, rel := range manifest.Paths() {
		if opts.Category != "" && !strings.HasPrefix(rel, opts.Category+"/") {
			continue
		}

		abs := filepath.Join(a.root, filepath.FromSlash(rel))
		if _, err := os.Stat(abs); err != nil {
			a.printer.FileMissing(rel)
			continue
		}

		if !opts.Force && !a.decider.NeedsValidation(abs, rel, manifest, cache) {
			a.printer.FileSkipped(rel)
			continue
		}

		selected = append(selected, rel)
	}
	return selected
}

// validate runs the layer executor on each selected file sequentially and
// splits the outcomes into two disjoint lists.
func (a *App) validate(ctx context.Context, manifest domain.Manifest, selected []string) (passed, failed []domain.Outcome) {
	total := len(selected)
	for i, rel := range selected {
		a.printer.FileStart(i+1, total, rel)

		abs := filepath.Join(a.root, filepath.FromSlash(rel))
		outcome := a.runner.Validate(ctx, abs, rel, manifest[rel])
		a.printer.Result(outcome)

		if outcome.Success {
			passed = append(passed, outcome)
		} else {
			failed = append(failed, outcome)
		}
	}
	return passed, failed
}

// updateCache folds this run's outcomes back into the cache. Entries of
// skipped files are left untouched.
func (a *App) updateCache(cache *domain.Cache, outcomes []domain.Outcome) {
	for _, o := range outcomes {
		abs := filepath.Join(a.root, filepath.FromSlash(o.Path))
		hash, err := a.fingerprinter.Fingerprint(abs)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("%s: failed to fingerprint for cache: %v", o.Path, err))
			continue
		}

		result := "fail"
		if o.Success {
			result = "pass"
		}

		cache.Files[o.Path] = domain.CacheEntry{
			ContentHash:      hash,
			LastValidated:    a.now().UTC().Format(time.RFC3339),
			ValidationResult: result,
			ValidationTimeMS: o.DurationMS(),
			LayersPassed:     o.LayersPassed,
		}
	}
}
