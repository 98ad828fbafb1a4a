package harness

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunnerSuccess(t *testing.T) {
	r := NewRunner("true", t.TempDir(), testLogger())

	res := r.Run(context.Background(), "noop")
	if !res.OK {
		t.Error("expected OK for zero exit")
	}
	if res.Label != "noop" {
		t.Errorf("label = %q, want noop", res.Label)
	}
	if res.Elapsed <= 0 {
		t.Errorf("elapsed = %v, want > 0", res.Elapsed)
	}
}

func TestRunnerNonZeroExit(t *testing.T) {
	r := NewRunner("false", t.TempDir(), testLogger())

	res := r.Run(context.Background(), "fail")
	if res.OK {
		t.Error("expected OK=false for non-zero exit")
	}
}

func TestRunnerMissingBinary(t *testing.T) {
	r := NewRunner("tracebench-no-such-tool", t.TempDir(), testLogger())

	// A binary that cannot start is a failed phase, not a harness error.
	res := r.Run(context.Background(), "missing")
	if res.OK {
		t.Error("expected OK=false for missing binary")
	}
}

func TestRunnerCapturesStdout(t *testing.T) {
	r := NewRunner("echo", t.TempDir(), testLogger())

	res := r.Run(context.Background(), "echo", "hello")
	if !res.OK {
		t.Fatal("echo failed")
	}
	if !strings.Contains(res.Stdout, "hello") {
		t.Errorf("stdout = %q, want to contain hello", res.Stdout)
	}
}

func TestRunnerTimeout(t *testing.T) {
	r := NewRunner("sleep", t.TempDir(), testLogger())
	r.Timeout = 50 * time.Millisecond

	res := r.Run(context.Background(), "hang", "5")
	if res.OK {
		t.Error("expected OK=false for timed-out command")
	}
	if res.Elapsed >= 5*time.Second {
		t.Errorf("elapsed = %v, timeout did not bound the wait", res.Elapsed)
	}
}

func TestThroughput(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		items   int
		want    float64
	}{
		{"normal", 2 * time.Second, 100, 50},
		{"zero elapsed", 0, 100, 0},
		{"no items", time.Second, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := PhaseResult{Elapsed: tt.elapsed, Items: tt.items}
			if got := r.Throughput(); got != tt.want {
				t.Errorf("Throughput() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	results := []PhaseResult{
		{Label: "a", Elapsed: time.Second, OK: true},
		{Label: "b", Elapsed: 2 * time.Second, OK: false},
		{Label: "c", Elapsed: time.Second, OK: true},
	}

	s := Summarize(results)
	if s.Operations != 3 {
		t.Errorf("operations = %d, want 3", s.Operations)
	}
	if s.Failures != 1 {
		t.Errorf("failures = %d, want 1", s.Failures)
	}
	if s.TotalElapsed != 4*time.Second {
		t.Errorf("total elapsed = %v, want 4s", s.TotalElapsed)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Operations != 0 || s.Failures != 0 || s.TotalElapsed != 0 {
		t.Errorf("empty summary = %+v, want zero totals", s)
	}
}
