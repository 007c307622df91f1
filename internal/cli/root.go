package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/aryankumar/cbench/internal/cli/benchmark"
	"github.com/aryankumar/cbench/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	cfgFile string
)

// Execute runs the root command with the provided context
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cbench",
		Short: "cbench - concurrent micro-benchmark harness",
		Long: `cbench times a unit of work, either once or as a fixed number of
iterations shared by a pool of worker threads, and reports the average
time per iteration together with the elapsed wall-clock time.

Ad-hoc commands are benchmarked with "cbench run", named benchmarks from
the config file with "cbench suite".`,
		Version:       version.Get().Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Define persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cbench.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (text, table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output with debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("log-file", "", "also write logs to this file, rotated at 10MB")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newSuiteCmd())
	rootCmd.AddCommand(benchmark.NewBenchmarkCmd())

	return rootCmd
}

// initConfig initializes environment overrides and logging.
// The config file itself is read by config.Manager in each command.
func initConfig(cmd *cobra.Command) error {
	// Read environment variables, e.g. CBENCH_OUTPUT=json
	viper.SetEnvPrefix("CBENCH")
	viper.AutomaticEnv()

	// Setup structured logging
	setupLogging(cmd)

	return nil
}

// setupLogging configures structured logging with slog
func setupLogging(cmd *cobra.Command) {
	verbose := viper.GetBool("verbose")
	noColor := viper.GetBool("no-color")

	// Set log level based on verbose flag
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var w io.Writer = cmd.ErrOrStderr()
	if logFile := viper.GetString("log-file"); logFile != "" {
		w = io.MultiWriter(w, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
	}

	var handler slog.Handler
	if noColor {
		// Use JSON handler for no-color mode
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	// Set default logger
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if verbose {
		slog.Debug("verbose logging enabled")
		if cfgFile != "" {
			slog.Debug("using configuration", "file", cfgFile)
		}
	}
}
