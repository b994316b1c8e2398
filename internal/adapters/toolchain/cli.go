// Package toolchain wraps the external wfl binary behind the Toolchain port.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/wflang/docvet/internal/core/domain"
	"github.com/wflang/docvet/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBinary is the well-known release output path of the toolchain.
const DefaultBinary = "target/release/wfl"

// versionTimeout bounds the version probe, which must never stall a run.
const versionTimeout = 5 * time.Second

var _ ports.Toolchain = (*CLI)(nil)

// CLI implements ports.Toolchain by shelling out to the wfl binary.
type CLI struct {
	binary string
	logger ports.Logger
}

// Resolve locates the toolchain binary, applying the platform executable
// suffix when the path has none. It returns domain.ErrToolchainNotFound with
// a build hint when the binary is absent, so a missing toolchain fails the
// run immediately instead of silently skipping checks.
func Resolve(path string) (string, error) {
	if path == "" {
		path = DefaultBinary
	}
	if runtime.GOOS == "windows" && !strings.HasSuffix(path, ".exe") {
		path += ".exe"
	}

	if _, err := os.Stat(path); err != nil {
		return "", zerr.With(
			zerr.Wrap(domain.ErrToolchainNotFound, "run 'cargo build --release' first"),
			"path", path,
		)
	}
	return path, nil
}

// NewCLI creates a toolchain adapter for a resolved binary path.
func NewCLI(binary string, logger ports.Logger) *CLI {
	return &CLI{binary: binary, logger: logger}
}

// Check runs one static check (--parse, --analyze or --lint) on the file.
// Every failure mode resolves to the CheckResult contract.
func (c *CLI) Check(ctx context.Context, path string, action ports.CheckAction, timeout time.Duration) ports.CheckResult {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, "--"+string(action), path) //nolint:gosec // binary is resolved by Resolve
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return ports.CheckResult{OK: true}
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ports.CheckResult{Diagnostic: fmt.Sprintf("timeout running %s on %s", action, path)}
	}

	diagnostic := strings.TrimSpace(stderr.String())
	if diagnostic == "" {
		diagnostic = strings.TrimSpace(stdout.String())
	}
	if diagnostic == "" {
		diagnostic = fmt.Sprintf("error running %s: %v", action, err)
	}
	return ports.CheckResult{Diagnostic: diagnostic}
}

// Execute runs the file and captures exit code, stdout and stderr.
func (c *CLI) Execute(ctx context.Context, path string, timeout time.Duration) ports.ExecResult {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, path) //nolint:gosec // binary is resolved by Resolve
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ports.ExecResult{
			ExitCode: -1,
			Stderr:   fmt.Sprintf("execution timeout (%ds)", int(timeout.Seconds())),
		}
	}

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return ports.ExecResult{ExitCode: -1, Stderr: fmt.Sprintf("execution error: %v", err)}
		}
	}

	return ports.ExecResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
}

// Version probes the binary with --version.
func (c *CLI) Version(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, "--version") //nolint:gosec // binary is resolved by Resolve
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		c.logger.Debug("toolchain version probe failed: " + err.Error())
		return "unknown"
	}
	return strings.TrimSpace(stdout.String())
}
