package bench

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/aryankumar/cbench/internal/executor"
	"github.com/aryankumar/cbench/internal/output"
	"github.com/aryankumar/cbench/internal/util"
	"github.com/google/uuid"
)

// Rule times test bodies and reports the result of each successful run.
// A Rule may be shared by parallel tests.
type Rule struct {
	executor *executor.Executor
	reporter output.Reporter
	logger   *slog.Logger
}

type ruleOptions struct {
	writer     io.Writer
	format     output.Format
	noColor    bool
	reporter   output.Reporter
	logger     *slog.Logger
	progressFn func(completed, total int)
}

// RuleOption configures a Rule
type RuleOption func(*ruleOptions)

// WithWriter sets where reports are written (default os.Stdout)
func WithWriter(w io.Writer) RuleOption {
	return func(o *ruleOptions) {
		o.writer = w
	}
}

// WithFormat sets the report format (default text)
func WithFormat(format output.Format) RuleOption {
	return func(o *ruleOptions) {
		o.format = format
	}
}

// WithNoColor disables colored reports
func WithNoColor(noColor bool) RuleOption {
	return func(o *ruleOptions) {
		o.noColor = noColor
	}
}

// WithReporter replaces the writer-based reporter; WithWriter, WithFormat
// and WithNoColor are then ignored
func WithReporter(reporter output.Reporter) RuleOption {
	return func(o *ruleOptions) {
		o.reporter = reporter
	}
}

// WithLogger sets the structured logger used by the rule and its executor
func WithLogger(logger *slog.Logger) RuleOption {
	return func(o *ruleOptions) {
		o.logger = logger
	}
}

// WithProgress forwards per-iteration progress from concurrent runs
func WithProgress(fn func(completed, total int)) RuleOption {
	return func(o *ruleOptions) {
		o.progressFn = fn
	}
}

// NewRule creates a Rule. By default it writes text reports to stdout.
func NewRule(opts ...RuleOption) *Rule {
	o := &ruleOptions{
		writer: os.Stdout,
		format: output.FormatText,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	reporter := o.reporter
	if reporter == nil {
		formatter := output.NewFormatter(o.format, output.WithNoColor(o.noColor))
		reporter = output.NewReporter(o.writer, formatter)
	}

	return &Rule{
		executor: executor.New(executor.WithLogger(o.logger), executor.WithProgress(o.progressFn)),
		reporter: reporter,
		logger:   o.logger,
	}
}

// Run times body according to marker and reports the outcome under name.
//
// The elapsed time in the report is wall-clock time from just before the
// executor starts until it returns. On failure nothing is reported and the
// executor's error is returned unchanged.
func (r *Rule) Run(name string, marker *Concurrently, body func() error) (Outcome, error) {
	mode := ModeFor(marker)
	runID, start := r.starting(name, mode)

	outcome, err := r.executor.Execute(executor.WorkFunc(body), mode)
	if err != nil {
		r.logger.Debug("benchmark failed", "name", name, "run_id", runID, "mode", mode.String(), "error", err)
		return Outcome{}, err
	}

	if err := r.finished(name, runID, outcome, start); err != nil {
		return outcome, util.WrapErrorf(err, "failed to report benchmark %q", name)
	}

	return outcome, nil
}

// Test benchmarks body as part of the running test t, labelling the report
// with the test's package and name. The test fails on any error.
func (r *Rule) Test(t testing.TB, marker *Concurrently, body func() error) Outcome {
	t.Helper()

	outcome, err := r.Run(qualifiedTestName(t), marker, body)
	if err != nil {
		t.Fatal(err)
	}
	return outcome
}

// starting assigns a run ID and records the outer start timestamp
func (r *Rule) starting(name string, mode executor.Mode) (string, time.Time) {
	runID := uuid.NewString()
	r.logger.Debug("benchmark starting", "name", name, "run_id", runID, "mode", mode.String())
	return runID, time.Now()
}

// finished hands the outcome and the outer elapsed time to the reporter
func (r *Rule) finished(name, runID string, outcome Outcome, start time.Time) error {
	report := output.Report{
		Name:    name,
		Outcome: outcome,
		Elapsed: time.Since(start),
		RunID:   runID,
	}

	r.logger.Debug("benchmark finished",
		"name", name,
		"run_id", runID,
		"outcome", outcome.String(),
		"elapsed", report.Elapsed)

	return r.reporter.Report(report)
}

// qualifiedTestName returns "pkg.TestName" for the test calling Rule.Test
func qualifiedTestName(t testing.TB) string {
	// Skip qualifiedTestName and Rule.Test to land in the test function
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return t.Name()
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return t.Name()
	}
	return util.QualifiedName(util.ShortPackageName(fn.Name()), t.Name())
}
