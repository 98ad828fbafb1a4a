// Package report formats benchmark results into a human-readable summary.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"tracebench/harness"
)

// Volume echoes one configured dataset volume.
type Volume struct {
	Name  string
	Count int
}

// Section groups related phase results under one heading.
type Section struct {
	Name    string
	Results []harness.PhaseResult
}

// Run carries everything the reporter prints. Aggregates are computed by
// the orchestrator; the reporter is presentation only.
type Run struct {
	Binary        string
	Volumes       []Volume
	Sections      []Section
	Summary       harness.Summary
	TotalEntities int

	// Workspace is the path left behind for inspection; empty when the
	// run cleaned up after itself.
	Workspace string
}

// Print writes the full report: configuration echo, per-section phase
// tables, and the summary block. It never fails; an empty run prints zero
// totals.
func Print(w io.Writer, run Run) {
	fmt.Fprintln(w, "TRACEABILITY TOOL BENCHMARK")
	fmt.Fprintf(w, "Target tool: %s\n\n", run.Binary)

	if len(run.Volumes) > 0 {
		cfg := newTable()
		cfg.AppendHeader(table.Row{"Dataset", "Records"})

		for _, v := range run.Volumes {
			cfg.AppendRow(table.Row{v.Name, v.Count})
		}

		cfg.AppendFooter(table.Row{"Total", run.TotalEntities})
		fmt.Fprintln(w, cfg.Render())
		fmt.Fprintln(w)
	}

	for _, section := range run.Sections {
		fmt.Fprintf(w, "%s\n", section.Name)

		t := newTable()
		t.AppendHeader(table.Row{"Phase", "Elapsed", "Rate", "Result"})

		for _, r := range section.Results {
			t.AppendRow(table.Row{
				r.Label,
				formatDuration(r.Elapsed),
				formatRate(r.Throughput()),
				marker(r.OK),
			})
		}

		fmt.Fprintln(w, t.Render())
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Summary")

	s := newTable()
	s.AppendRow(table.Row{"Total entities", run.TotalEntities})
	s.AppendRow(table.Row{"Total benchmark", formatDuration(run.Summary.TotalElapsed)})
	s.AppendRow(table.Row{"Operations run", run.Summary.Operations})
	s.AppendRow(table.Row{"Operations failed", run.Summary.Failures})
	fmt.Fprintln(w, s.Render())

	if run.Workspace != "" {
		fmt.Fprintf(w, "\nWorkspace: %s\n", run.Workspace)
		fmt.Fprintf(w, "(run 'rm -rf %s' to clean up)\n", run.Workspace)
	}
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	return t
}

func marker(ok bool) string {
	if ok {
		return "ok"
	}

	return "FAIL"
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}

func formatRate(rate float64) string {
	if rate <= 0 {
		return "-"
	}

	return fmt.Sprintf("%.0f/s", rate)
}
