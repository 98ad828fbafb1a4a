// Package bench sequences the benchmark lifecycle against the target tool:
// fixture generation, project initialization, imports, validation, listing,
// reporting, and cache phases, each timed individually.
package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"tracebench/dataset"
	"tracebench/harness"
	"tracebench/report"
)

// Run executes the full benchmark: generate fixtures, provision a
// workspace, drive the target tool through every phase in order, and print
// the summary to out. Every phase is attempted regardless of prior phase
// outcomes, so one run surfaces all failures. Only fixture generation,
// fixture writing, and workspace provisioning abort the run. With
// cfg.Strict set, a non-zero failure count becomes an error after the
// report is printed.
func Run(ctx context.Context, logger *slog.Logger, cfg Config, out io.Writer) error {
	ws, err := harness.Provision()
	if err != nil {
		return fmt.Errorf("provision workspace: %w", err)
	}

	logger.Info("workspace provisioned", slog.String("root", ws.Root))

	gen := dataset.NewGenerator(cfg.Seed)
	fixtures := make(map[dataset.Kind]string, len(dataset.Kinds()))

	for _, kind := range dataset.Kinds() {
		count := cfg.Volume(kind)
		records := gen.Generate(kind, count)
		path := filepath.Join(ws.DataDir, kind.Filename())

		if err := dataset.WriteCSV(path, kind.Schema(), records); err != nil {
			return fmt.Errorf("write %s fixture: %w", kind, err)
		}

		fixtures[kind] = path

		logger.Info("fixture written",
			slog.String("kind", string(kind)),
			slog.Int("records", count),
		)
	}

	runner := harness.NewRunner(cfg.Binary, ws.ProjectDir, logger)
	runner.Timeout = time.Duration(cfg.Timeout)

	total := cfg.TotalEntities()

	var sections []report.Section

	// Init and imports. Import order matters: risks and tests reference
	// requirements and components in the tool's relational model.
	imports := report.Section{Name: "Import"}
	imports.Results = append(imports.Results,
		runner.Run(ctx, "init", "init", "-q"))

	for _, kind := range dataset.Kinds() {
		count := cfg.Volume(kind)
		label := fmt.Sprintf("import %s (%d)", kind.Code(), count)

		res := runner.Run(ctx, label, "import", kind.Code(), fixtures[kind])
		res.Items = count
		imports.Results = append(imports.Results, res)
	}

	sections = append(sections, imports)

	validation := report.Section{Name: "Validation"}

	validate := runner.Run(ctx, "validate", "validate")
	validate.Items = total
	validation.Results = append(validation.Results, validate)
	validation.Results = append(validation.Results,
		runner.Run(ctx, "validate --fix", "validate", "--fix"))

	sections = append(sections, validation)

	listing := report.Section{Name: "Listing"}

	for _, kind := range dataset.Kinds() {
		code := kind.Code()
		label := fmt.Sprintf("%s list (%d)", code, cfg.Volume(kind))
		listing.Results = append(listing.Results,
			runner.Run(ctx, label, code, "list"))
	}

	for _, phase := range []struct {
		label string
		args  []string
	}{
		{"req list --format json", []string{"req", "list", "--format", "json"}},
		{"req list --priority critical", []string{"req", "list", "--priority", "critical"}},
		{"risk list --by-rpn", []string{"risk", "list", "--by-rpn"}},
		{"req list --count", []string{"req", "list", "--count"}},
	} {
		listing.Results = append(listing.Results,
			runner.Run(ctx, phase.label, phase.args...))
	}

	sections = append(sections, listing)

	status := report.Section{Name: "Status & Reports"}

	for _, phase := range []struct {
		label string
		args  []string
	}{
		{"status", []string{"status"}},
		{"status --detailed", []string{"status", "--detailed"}},
		{"report rvm", []string{"report", "rvm"}},
		{"report fmea", []string{"report", "fmea"}},
		{"report test-status", []string{"report", "test-status"}},
		{"report open-issues", []string{"report", "open-issues"}},
		{"trace matrix", []string{"trace", "matrix"}},
	} {
		status.Results = append(status.Results,
			runner.Run(ctx, phase.label, phase.args...))
	}

	sections = append(sections, status)

	// The second rebuild deliberately hits an already-warm cache so cold
	// and warm rebuild cost can be compared.
	cache := report.Section{Name: "Cache"}
	cache.Results = append(cache.Results,
		runner.Run(ctx, "cache status", "cache", "status"),
		runner.Run(ctx, "cache rebuild", "cache", "rebuild"),
		runner.Run(ctx, "cache rebuild (warm)", "cache", "rebuild"),
	)

	sections = append(sections, cache)

	var all []harness.PhaseResult
	for _, s := range sections {
		all = append(all, s.Results...)
	}

	summary := harness.Summarize(all)

	workspace := ws.Root

	if cfg.Cleanup {
		if err := ws.Remove(); err != nil {
			logger.Warn("workspace cleanup failed",
				slog.String("error", err.Error()))
		} else {
			workspace = ""
		}
	}

	report.Print(out, report.Run{
		Binary:        cfg.Binary,
		Volumes:       volumes(cfg),
		Sections:      sections,
		Summary:       summary,
		TotalEntities: total,
		Workspace:     workspace,
	})

	if cfg.Strict && summary.Failures > 0 {
		return fmt.Errorf(
			"%d of %d operations failed",
			summary.Failures, summary.Operations,
		)
	}

	return nil
}

func volumes(cfg Config) []report.Volume {
	return []report.Volume{
		{Name: "Requirements", Count: cfg.Requirements},
		{Name: "Components", Count: cfg.Components},
		{Name: "Suppliers", Count: cfg.Suppliers},
		{Name: "Risks", Count: cfg.Risks},
		{Name: "Tests", Count: cfg.Tests},
	}
}
