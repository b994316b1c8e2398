// Package console renders per-file progress and the run summary.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/wflang/docvet/internal/core/domain"
)

// errorPreviewLen bounds the diagnostic excerpt shown on a failure line.
const errorPreviewLen = 150

// Printer writes human-readable progress lines. Output is strictly
// sequential, one file at a time.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header prints the run banner.
func (p *Printer) Header() {
	fmt.Fprintln(p.w, "docvet: documentation examples validation")
	fmt.Fprintln(p.w, strings.Repeat("=", 60))
}

// FileStart announces the file about to be validated.
func (p *Printer) FileStart(index, total int, path string) {
	fmt.Fprintf(p.w, "[%d/%d] Validating %s...\n", index, total, path)
}

// FileSkipped reports a cache hit.
func (p *Printer) FileSkipped(path string) {
	fmt.Fprintf(p.w, "%s Skipping %s (unchanged, cached)\n", color.New(color.FgCyan).Sprint("→"), path)
}

// FileMissing warns about a manifest entry whose file does not exist.
func (p *Printer) FileMissing(path string) {
	fmt.Fprintf(p.w, "%s %s in manifest but file not found\n", color.New(color.FgYellow).Sprint("⚠"), path)
}

// Result prints the outcome of one file, including a truncated diagnostic
// on failure.
func (p *Printer) Result(o domain.Outcome) {
	if o.Success {
		fmt.Fprintf(p.w, "  %s PASS (layers %v) - %.0fms\n",
			color.New(color.FgGreen).Sprint("✓"), o.LayersPassed, o.DurationMS())
		return
	}

	fmt.Fprintf(p.w, "  %s FAIL at layer %d (%s)\n",
		color.New(color.FgRed).Sprint("✗"), int(o.Layer), o.Layer)
	if o.Error != "" {
		fmt.Fprintf(p.w, "     Error: %s\n", truncate(o.Error, errorPreviewLen))
	}
}

// Summary prints the final counts and enumerates every failure.
func (p *Printer) Summary(passed, failed []domain.Outcome) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, strings.Repeat("=", 60))
	fmt.Fprintf(p.w, "%s Passed: %d\n", color.New(color.FgGreen).Sprint("✓"), len(passed))
	fmt.Fprintf(p.w, "%s Failed: %d\n", color.New(color.FgRed).Sprint("✗"), len(failed))
	fmt.Fprintf(p.w, "  Total:  %d\n", len(passed)+len(failed))

	if len(failed) == 0 {
		fmt.Fprintf(p.w, "\n%s\n", color.New(color.FgGreen).Sprint("ALL EXAMPLES VALIDATED SUCCESSFULLY"))
		return
	}

	fmt.Fprintf(p.w, "\n%s\n\nFailed examples:\n", color.New(color.FgRed).Sprint("VALIDATION FAILED"))
	for _, o := range failed {
		fmt.Fprintf(p.w, "  - %s (layer %d, %s)\n", o.Path, int(o.Layer), o.Layer)
	}
}

// ReportWritten reports where the JSON report landed.
func (p *Printer) ReportWritten(path string) {
	fmt.Fprintf(p.w, "\nReport written to %s\n", path)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
