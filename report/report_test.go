package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tracebench/harness"
)

func TestPrintEmptyRun(t *testing.T) {
	var buf bytes.Buffer

	Print(&buf, Run{Binary: "tdt"})

	output := buf.String()

	for _, want := range []string{
		"Target tool: tdt",
		"Operations run",
		"Operations failed",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if strings.Contains(output, "Workspace:") {
		t.Error("empty run should not print a workspace path")
	}
}

func TestPrintSections(t *testing.T) {
	run := Run{
		Binary: "tdt",
		Volumes: []Volume{
			{Name: "Requirements", Count: 500},
			{Name: "Components", Count: 200},
		},
		Sections: []Section{
			{
				Name: "Import",
				Results: []harness.PhaseResult{
					{
						Label:   "import req (500)",
						Elapsed: 2 * time.Second,
						OK:      true,
						Items:   500,
					},
					{
						Label:   "import cmp (200)",
						Elapsed: time.Second,
						OK:      false,
						Items:   200,
					},
				},
			},
		},
		Summary: harness.Summary{
			TotalElapsed: 3 * time.Second,
			Operations:   2,
			Failures:     1,
		},
		TotalEntities: 700,
		Workspace:     "/tmp/tracebench-xyz",
	}

	var buf bytes.Buffer
	Print(&buf, run)

	output := buf.String()

	for _, want := range []string{
		"Import",
		"import req (500)",
		"import cmp (200)",
		"250/s", // 500 entities over 2s
		"FAIL",
		"700",
		"3.000s",
		"Workspace: /tmp/tracebench-xyz",
		"rm -rf /tmp/tracebench-xyz",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPrintCleanedRunOmitsHint(t *testing.T) {
	var buf bytes.Buffer

	Print(&buf, Run{Binary: "tdt", Workspace: ""})

	if strings.Contains(buf.String(), "rm -rf") {
		t.Error("cleaned run should not print a cleanup hint")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "0.000s"},
		{1500 * time.Millisecond, "1.500s"},
		{42 * time.Millisecond, "0.042s"},
		{time.Minute, "60.000s"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.input); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "-"},
		{-1, "-"},
		{50, "50/s"},
		{1234.5, "1234/s"},
	}

	for _, tt := range tests {
		if got := formatRate(tt.input); got != tt.want {
			t.Errorf("formatRate(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
