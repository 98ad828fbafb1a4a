// Package main provides the CLI entry point for tracebench, a performance
// benchmark harness for command-line traceability tools.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"tracebench/bench"
	"tracebench/dataset"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "tracebench",
		Short: "Benchmark harness for command-line traceability tools",
		Long: `Tracebench drives an external traceability tool through a fixed
lifecycle (init, import, validate, list, report, cache) against generated
datasets and records per-operation wall-clock timings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newBaselineCmd(logger))

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		configPath   string
		requirements int
		components   int
		suppliers    int
		risks        int
		tests        int
		seed         int64
		timeout      time.Duration
		strict       bool
		cleanup      bool
	)

	cmd := &cobra.Command{
		Use:   "run [tool-binary]",
		Short: "Run the benchmark against a target tool",
		Long: `Generate randomized datasets at the configured volumes and time every
target tool operation end to end. The tool binary may be given as a path or
a bare name resolved via PATH (default "tdt").`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := bench.DefaultConfig()

			if configPath != "" {
				var err error

				cfg, err = bench.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}

			// Flags set on the command line win over the config file.
			flags := cmd.Flags()
			if flags.Changed("requirements") {
				cfg.Requirements = requirements
			}
			if flags.Changed("components") {
				cfg.Components = components
			}
			if flags.Changed("suppliers") {
				cfg.Suppliers = suppliers
			}
			if flags.Changed("risks") {
				cfg.Risks = risks
			}
			if flags.Changed("tests") {
				cfg.Tests = tests
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("timeout") {
				cfg.Timeout = bench.Duration(timeout)
			}
			if flags.Changed("strict") {
				cfg.Strict = strict
			}
			if flags.Changed("cleanup") {
				cfg.Cleanup = cleanup
			}

			if len(args) == 1 {
				binary, err := resolveBinary(args[0])
				if err != nil {
					return err
				}

				cfg.Binary = binary
			}

			return bench.Run(cmd.Context(), logger, cfg, os.Stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "",
		"Path to a YAML config file")
	flags.IntVar(&requirements, "requirements", 500,
		"Number of requirements to generate")
	flags.IntVar(&components, "components", 200,
		"Number of components to generate")
	flags.IntVar(&suppliers, "suppliers", 20,
		"Number of suppliers to generate")
	flags.IntVar(&risks, "risks", 100,
		"Number of risks to generate")
	flags.IntVar(&tests, "tests", 150,
		"Number of tests to generate")
	flags.Int64Var(&seed, "seed", 0,
		"Random seed for dataset generation (0 = use current time)")
	flags.DurationVar(&timeout, "timeout", 0,
		"Per-command timeout; an expired command counts as a failed phase (0 = none)")
	flags.BoolVar(&strict, "strict", false,
		"Exit non-zero if any phase fails")
	flags.BoolVar(&cleanup, "cleanup", false,
		"Remove the workspace after the run")

	return cmd
}

func newBaselineCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline [output-dir]",
		Short: "Write the curated baseline fixture set",
		Long: `Write the hand-curated industrial linear actuator fixture set as CSV
files ready for 'import req requirements.csv' and friends. Unlike 'run',
the content is static and contains no randomness.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "baseline_csvs"
			if len(args) == 1 {
				dir = args[0]
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			if err := dataset.WriteBaseline(dir); err != nil {
				return err
			}

			for _, kind := range dataset.Kinds() {
				logger.Info("baseline fixture written",
					slog.String("file", filepath.Join(dir, kind.Filename())),
					slog.Int("records", len(dataset.Baseline(kind))),
				)
			}

			return nil
		},
	}

	return cmd
}

// resolveBinary turns an explicit tool path into an absolute one, since the
// runner executes commands from inside the workspace project directory. A
// bare name is left for PATH resolution.
func resolveBinary(arg string) (string, error) {
	if filepath.Base(arg) == arg {
		return arg, nil
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve tool path: %w", err)
	}

	return abs, nil
}
