package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aryankumar/cbench/internal/config"
	"github.com/aryankumar/cbench/internal/output"
	"github.com/aryankumar/cbench/internal/util"
	"github.com/aryankumar/cbench/pkg/bench"
	"github.com/spf13/viper"
)

// settings are the effective options of a benchmarking command: flags and
// CBENCH_* variables first, then the config file defaults
type settings struct {
	manager *config.Manager
	config  *config.BenchConfig
	format  output.Format
	noColor bool
}

// loadSettings reads the config file and resolves the output options
func loadSettings() (*settings, error) {
	manager := config.NewManager(viper.GetString("config"))
	cfg, err := manager.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if used := manager.ConfigFileUsed(); used != "" {
		slog.Debug("loaded cbench config", "file", used, "benchmarks", len(cfg.Benchmarks))
	}

	formatName := viper.GetString("output")
	if formatName == "" {
		formatName = cfg.Defaults.OutputFormat
	}

	format, ok := output.ParseFormat(formatName)
	if !ok {
		return nil, util.NewValidationError("output", formatName, "supported formats are text, table, json, yaml")
	}

	return &settings{
		manager: manager,
		config:  cfg,
		format:  format,
		noColor: viper.GetBool("no-color") || cfg.Defaults.NoColor,
	}, nil
}

// formatter builds the formatter for the resolved format
func (s *settings) formatter(wide bool) output.Formatter {
	return output.NewFormatter(s.format, output.WithNoColor(s.noColor), output.WithWide(wide))
}

// newRule creates a rule reporting through reporter, optionally printing
// progress of concurrent runs to progressOut
func (s *settings) newRule(reporter output.Reporter, progressOut io.Writer) *bench.Rule {
	opts := []bench.RuleOption{
		bench.WithReporter(reporter),
		bench.WithLogger(slog.Default()),
	}
	if progressOut != nil {
		opts = append(opts, bench.WithProgress(newProgressPrinter(progressOut).update))
	}
	return bench.NewRule(opts...)
}

// withMetrics tees reports into a Prometheus registry when path is set
func withMetrics(reporter output.Reporter, path string) (output.Reporter, *output.MetricsReporter) {
	if path == "" {
		return reporter, nil
	}
	metrics := output.NewMetricsReporter()
	return output.MultiReporter{reporter, metrics}, metrics
}
