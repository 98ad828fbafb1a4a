// Package harness executes target tool commands inside a disposable
// workspace and records per-phase wall-clock timings.
package harness

import "time"

// PhaseResult records the outcome of one timed tool invocation.
type PhaseResult struct {
	Label   string
	Elapsed time.Duration
	OK      bool
	Stdout  string
	Stderr  string

	// Items is the number of entities the phase processed, used to derive
	// throughput. Zero means throughput is meaningless for the phase.
	Items int
}

// Throughput returns items per second for the phase, or 0 when the elapsed
// time is non-positive.
func (r PhaseResult) Throughput() float64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 || r.Items <= 0 {
		return 0
	}

	return float64(r.Items) / secs
}

// Summary aggregates an ordered sequence of phase results.
type Summary struct {
	TotalElapsed time.Duration
	Operations   int
	Failures     int
}

// Summarize folds results into totals. An empty sequence yields zero totals.
func Summarize(results []PhaseResult) Summary {
	var s Summary

	for _, r := range results {
		s.TotalElapsed += r.Elapsed
		s.Operations++

		if !r.OK {
			s.Failures++
		}
	}

	return s
}
