// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"time"
)

// CheckAction names one static check performed by the toolchain binary.
type CheckAction string

const (
	// ActionParse runs syntax validation.
	ActionParse CheckAction = "parse"
	// ActionAnalyze runs semantic analysis, which includes type checking.
	ActionAnalyze CheckAction = "analyze"
	// ActionLint runs the code quality checker.
	ActionLint CheckAction = "lint"
)

// CheckResult is the uniform result of a static check invocation.
type CheckResult struct {
	OK bool
	// Diagnostic carries the tool's error output when OK is false.
	Diagnostic string
}

// ExecResult is the result of executing an example file.
type ExecResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Toolchain wraps the external language toolchain as a capability. All
// failure modes, including timeouts, resolve to the return values; methods
// never panic across this boundary.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Check runs one static check on the file, bounded by timeout.
	Check(ctx context.Context, path string, action CheckAction, timeout time.Duration) CheckResult

	// Execute runs the file and captures its exit code and output, bounded
	// by timeout. A timeout or spawn failure yields exit code -1 with a
	// descriptive stderr.
	Execute(ctx context.Context, path string, timeout time.Duration) ExecResult

	// Version returns the toolchain version string, or "unknown" when the
	// probe fails.
	Version(ctx context.Context) string
}
