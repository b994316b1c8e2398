// Package report renders the aggregate validation summary as JSON.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/wflang/docvet/internal/core/domain"
	"go.trai.ch/zerr"
)

// Report is the persisted summary of one validation run.
type Report struct {
	ValidationTimestamp string    `json:"validation_timestamp"`
	WFLVersion          string    `json:"wfl_version"`
	TotalExamples       int       `json:"total_examples"`
	Validated           int       `json:"validated"`
	Passed              int       `json:"passed"`
	Failed              int       `json:"failed"`
	Failures            []Failure `json:"failures"`
}

// Failure describes one failed example.
type Failure struct {
	File      string `json:"file"`
	Layer     int    `json:"layer"`
	LayerName string `json:"layer_name"`
	Error     string `json:"error"`
}

// Build assembles a Report from the run's outcomes. Passed and failed are
// disjoint; their union is exactly the set of files executed this run, so
// passed+failed == validated == total.
func Build(passed, failed []domain.Outcome, toolVersion string, now time.Time) Report {
	failures := make([]Failure, 0, len(failed))
	for _, o := range failed {
		failures = append(failures, Failure{
			File:      o.Path,
			Layer:     int(o.Layer),
			LayerName: o.Layer.String(),
			Error:     o.Error,
		})
	}

	validated := len(passed) + len(failed)
	return Report{
		ValidationTimestamp: now.UTC().Format(time.RFC3339),
		WFLVersion:          toolVersion,
		TotalExamples:       validated,
		Validated:           validated,
		Passed:              len(passed),
		Failed:              len(failed),
		Failures:            failures,
	}
}

// Render marshals the report to the bytes written to disk.
func Render(r Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal report")
	}
	return append(data, '\n'), nil
}

// Write renders the report to the given path.
func Write(r Report, path string) error {
	data, err := Render(r)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.Wrap(err, "failed to create directory for report")
		}
	}

	//nolint:gosec // Path comes from configuration
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write report"), "path", path)
	}
	return nil
}
