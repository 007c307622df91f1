package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aryankumar/cbench/internal/config"
	"github.com/aryankumar/cbench/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type suiteOptions struct {
	wide        bool
	progress    bool
	metricsFile string
}

// newSuiteCmd creates the suite command
func newSuiteCmd() *cobra.Command {
	opts := &suiteOptions{}

	cmd := &cobra.Command{
		Use:   "suite [NAME...]",
		Short: "Run the benchmarks defined in the config file",
		Long: `Run the benchmarks listed under "benchmarks:" in the config file.

Benchmarks run one after another in the order they are declared. Naming
benchmarks restricts the run to those. The first failing benchmark stops
the suite; results of the benchmarks that completed are still printed.

Text output is printed as each benchmark finishes. Table, JSON and YAML
output is printed once at the end.`,
		Example: `  # Run every configured benchmark and summarize them in a table
  cbench suite -o table

  # Run two benchmarks by name
  cbench suite parse encode`,
		ValidArgsFunction: completeBenchmarkNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.wide, "wide", false, "show total and duration columns in table output")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "print progress of concurrent runs to stderr")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "also write the results as a Prometheus textfile")

	return cmd
}

func runSuite(cmd *cobra.Command, opts *suiteOptions, names []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	benchmarks, err := s.manager.SelectBenchmarks(names)
	if err != nil {
		return err
	}

	if len(benchmarks) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No benchmarks configured")
		return nil
	}

	out := cmd.OutOrStdout()
	formatter := s.formatter(opts.wide)

	// Text streams per benchmark; the other formats render the whole suite at once
	var (
		reporter output.Reporter
		recorder *output.Recorder
	)
	if s.format == output.FormatText {
		reporter = output.NewReporter(out, formatter)
	} else {
		recorder = output.NewRecorder()
		reporter = recorder
	}

	reporter, metrics := withMetrics(reporter, opts.metricsFile)

	var progressOut io.Writer
	if opts.progress {
		progressOut = cmd.ErrOrStderr()
	}
	rule := s.newRule(reporter, progressOut)

	ctx := cmd.Context()
	var runErr error
	for _, b := range benchmarks {
		slog.Debug("running suite benchmark", "name", b.Name, "command", b.Command)

		if _, err := rule.Run(b.Name, b.Marker(), commandWork(ctx, b.Command, b.Dir)); err != nil {
			runErr = interrupted(ctx, b.Name, fmt.Errorf("benchmark %q failed: %w", b.Name, err))
			break
		}
	}

	if recorder != nil {
		if err := recorder.Flush(out, formatter); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}

	if metrics != nil {
		if err := metrics.WriteTextfile(opts.metricsFile); err != nil {
			return err
		}
	}

	return runErr
}

// completeBenchmarkNames offers the configured benchmarks not yet named on the command line
func completeBenchmarkNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.NewManager(viper.GetString("config")).Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	seen := make(map[string]bool, len(args))
	for _, a := range args {
		seen[a] = true
	}

	var names []string
	for _, b := range cfg.Benchmarks {
		if !seen[b.Name] && strings.HasPrefix(b.Name, toComplete) {
			names = append(names, b.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
