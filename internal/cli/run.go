package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aryankumar/cbench/internal/output"
	"github.com/aryankumar/cbench/pkg/bench"
	"github.com/spf13/cobra"
)

type runOptions struct {
	iterations  int
	threads     int
	name        string
	dir         string
	progress    bool
	metricsFile string
}

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [flags] -- COMMAND [ARGS...]",
		Short: "Benchmark a command",
		Long: `Benchmark an external command.

Without --iterations and --threads the command runs once. With both, the
command runs ITERATIONS times on a pool of THREADS workers and the average
time per iteration is reported. Any non-zero exit aborts the benchmark.`,
		Example: `  # Time a single run
  cbench run -- curl -s http://localhost:8080/health

  # 100 runs shared by 8 workers, reported as JSON
  cbench run -n 100 -t 8 -o json -- ./client --once`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 0, "total number of runs (requires --threads)")
	cmd.Flags().IntVarP(&opts.threads, "threads", "t", 0, "number of concurrent workers (requires --iterations)")
	cmd.Flags().StringVar(&opts.name, "name", "", "label for the report (default is the command line)")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "working directory for the command")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "print progress of concurrent runs to stderr")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "also write the result as a Prometheus textfile")

	return cmd
}

func runRun(cmd *cobra.Command, opts *runOptions, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	name := opts.name
	if name == "" {
		name = strings.Join(args, " ")
	}

	marker := runMarker(cmd, opts, s.config.Defaults.Marker())

	slog.Debug("running benchmark",
		"name", name,
		"command", args,
		"mode", bench.ModeFor(marker).String(),
		"format", s.format)

	var progressOut io.Writer
	if opts.progress {
		progressOut = cmd.ErrOrStderr()
	}

	reporter, metrics := withMetrics(output.NewReporter(cmd.OutOrStdout(), s.formatter(false)), opts.metricsFile)
	rule := s.newRule(reporter, progressOut)

	ctx := cmd.Context()
	if _, err := rule.Run(name, marker, commandWork(ctx, args, opts.dir)); err != nil {
		return interrupted(ctx, name, fmt.Errorf("benchmark %q failed: %w", name, err))
	}

	if metrics != nil {
		return metrics.WriteTextfile(opts.metricsFile)
	}
	return nil
}

// runMarker merges the --iterations/--threads flags over the config defaults.
// A count given on only one side takes the other from the defaults.
func runMarker(cmd *cobra.Command, opts *runOptions, defaults *bench.Concurrently) *bench.Concurrently {
	iterationsSet := cmd.Flags().Changed("iterations")
	threadsSet := cmd.Flags().Changed("threads")

	if !iterationsSet && !threadsSet {
		return defaults
	}

	marker := &bench.Concurrently{Iterations: opts.iterations, Threads: opts.threads}
	if defaults != nil {
		if !iterationsSet {
			marker.Iterations = defaults.Iterations
		}
		if !threadsSet {
			marker.Threads = defaults.Threads
		}
	}
	return marker
}
