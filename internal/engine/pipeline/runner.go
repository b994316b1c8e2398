package pipeline

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/wflang/docvet/internal/core/domain"
	"github.com/wflang/docvet/internal/core/ports"
)

// stderrPreviewLen bounds the stderr excerpt folded into an exit-code
// mismatch diagnostic.
const stderrPreviewLen = 200

// Runner validates a single file by driving the layer state machine with
// toolchain invocations.
type Runner struct {
	tool   ports.Toolchain
	logger ports.Logger
	now    func() time.Time
}

// NewRunner creates a Runner backed by the given toolchain.
func NewRunner(tool ports.Toolchain, logger ports.Logger) *Runner {
	return &Runner{
		tool:   tool,
		logger: logger,
		now:    time.Now,
	}
}

var checkActions = map[domain.Layer]ports.CheckAction{
	domain.LayerParse:   ports.ActionParse,
	domain.LayerAnalyze: ports.ActionAnalyze,
	domain.LayerLint:    ports.ActionLint,
}

// Validate runs the requested layers for one file in ascending order and
// returns a single outcome. It never returns an error: per-file failures
// are outcomes, not errors, so one bad file cannot abort the batch.
func (r *Runner) Validate(ctx context.Context, absPath, relPath string, entry domain.ManifestEntry) domain.Outcome {
	start := r.now()
	m := newMachine(entry, r.compileMatcher(relPath, entry))

	if err := checkReadable(absPath); err != nil {
		// An unreadable file is a parse-layer failure for this file only.
		return domain.Outcome{
			Path:     relPath,
			Layer:    domain.LayerParse,
			Error:    fmt.Sprintf("failed to read file: %v", err),
			Duration: r.now().Sub(start),
		}
	}

	requested := make(map[domain.Layer]bool, len(entry.Layers()))
	for _, l := range entry.Layers() {
		requested[l] = true
	}
	timeout := entry.Timeout()

	for _, layer := range domain.AllLayers {
		if m.done() {
			break
		}
		if !requested[layer] {
			continue
		}

		switch layer {
		case domain.LayerTypeCheck:
			// The analyze invocation already performs type checking, so this
			// layer is recorded without a call of its own.
			m.observe(layer, true, "")

		case domain.LayerExecute:
			if entry.SkipExecution {
				continue
			}
			r.execute(ctx, m, absPath, entry, timeout)

		default:
			res := r.tool.Check(ctx, absPath, checkActions[layer], timeout)
			m.observe(layer, res.OK, res.Diagnostic)
		}
	}

	m.finish()

	return domain.Outcome{
		Path:         relPath,
		Success:      m.passed(),
		Layer:        m.layer,
		Error:        m.diagnostic,
		LayersPassed: m.layersPassed,
		Duration:     r.now().Sub(start),
	}
}

// execute runs the file and feeds the exit-code comparison into the state
// machine. Reconciliation matches against stderr, falling back to stdout.
func (r *Runner) execute(ctx context.Context, m *machine, absPath string, entry domain.ManifestEntry, timeout time.Duration) {
	res := r.tool.Execute(ctx, absPath, timeout)
	ok := res.ExitCode == entry.ExpectedExitCode

	diagnostic := res.Stderr
	if diagnostic == "" {
		diagnostic = res.Stdout
	}

	m.observe(domain.LayerExecute, ok, diagnostic)
	if m.phase == phaseFailed {
		m.diagnostic = exitMismatchError(res, entry.ExpectedExitCode)
	}
}

// compileMatcher compiles the entry's expected-error pattern into a
// case-insensitive search. A malformed pattern degrades to never matching,
// failing the example rather than silently passing it.
func (r *Runner) compileMatcher(relPath string, entry domain.ManifestEntry) func(string) bool {
	if !entry.IsErrorExample() {
		return func(string) bool { return false }
	}

	re, err := regexp.Compile("(?i)" + entry.ExpectedErrorPattern)
	if err != nil {
		r.logger.Warn(fmt.Sprintf("%s: invalid expected_error_pattern %q: %v",
			relPath, entry.ExpectedErrorPattern, err))
		return func(string) bool { return false }
	}
	return re.MatchString
}

func exitMismatchError(res ports.ExecResult, expected int) string {
	msg := fmt.Sprintf("Exit code %d, expected %d", res.ExitCode, expected)
	if res.Stderr != "" {
		stderr := res.Stderr
		if len(stderr) > stderrPreviewLen {
			stderr = stderr[:stderrPreviewLen]
		}
		msg += "\nStderr: " + stderr
	}
	return msg
}

func checkReadable(path string) error {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	return f.Close()
}
