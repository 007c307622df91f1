package benchmark

import (
	"fmt"
	"log/slog"

	"github.com/aryankumar/cbench/internal/config"
	"github.com/spf13/cobra"
)

type addOptions struct {
	iterations int
	threads    int
	dir        string
}

// newAddCmd creates the benchmark add command
func newAddCmd() *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add NAME -- COMMAND [ARGS...]",
		Short: "Add a benchmark to the cbench configuration",
		Long: `Add a named benchmark to the cbench configuration.

An existing benchmark with the same name is replaced in place, keeping its
position in the suite. Give --iterations and --threads together to run the
benchmark concurrently; omit both to time a single run.`,
		Example: `  cbench benchmark add health -n 50 -t 5 -- curl -s http://localhost:8080/health`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts, args[0], args[1:])
		},
	}

	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 0, "total number of runs")
	cmd.Flags().IntVarP(&opts.threads, "threads", "t", 0, "number of concurrent workers")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "working directory for the command")

	return cmd
}

func runAdd(cmd *cobra.Command, opts *addOptions, name string, command []string) error {
	manager, err := loadManager()
	if err != nil {
		return err
	}

	_, replaced := manager.GetBenchmark(name)

	b := config.BenchmarkConfig{
		Name:       name,
		Command:    command,
		Dir:        opts.dir,
		Iterations: opts.iterations,
		Threads:    opts.threads,
	}
	if err := manager.SetBenchmark(b); err != nil {
		return err
	}

	if err := manager.Save(); err != nil {
		return err
	}

	slog.Debug("saved benchmark", "name", name, "replaced", replaced)

	verb := "Added"
	if replaced {
		verb = "Updated"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s benchmark %q\n", verb, name)
	return nil
}
