package harness

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// Runner invokes the target tool binary. The working directory is pinned to
// the project directory so the tool's own project discovery resolves there.
type Runner struct {
	Binary  string
	Dir     string
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewRunner creates a Runner for the given binary, executing every command
// from dir. A zero Timeout means commands may run indefinitely.
func NewRunner(binary, dir string, logger *slog.Logger) *Runner {
	return &Runner{
		Binary: binary,
		Dir:    dir,
		Logger: logger.With(slog.String("binary", binary)),
	}
}

// Run executes one tool command and returns its timed outcome. Elapsed time
// spans process start to exit, startup and teardown included. A non-zero
// exit, a failure to start, or a timeout all record OK=false; none of them
// abort the run — exit status and stderr are data here, not control flow.
func (r *Runner) Run(ctx context.Context, label string, args ...string) PhaseResult {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	result := PhaseResult{
		Label:   label,
		Elapsed: elapsed,
		OK:      err == nil,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}

	r.Logger.Info("phase finished",
		slog.String("label", label),
		slog.Duration("elapsed", elapsed),
		slog.Bool("ok", result.OK),
	)

	return result
}
