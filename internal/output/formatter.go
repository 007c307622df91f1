package output

import (
	"io"
	"time"

	"github.com/aryankumar/cbench/internal/executor"
)

// Format represents the output format type
type Format string

const (
	// FormatText outputs the two-line console summary per benchmark
	FormatText Format = "text"
	// FormatTable outputs data in a table format
	FormatTable Format = "table"
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
)

// Report is what gets emitted for one benchmarked unit of work
type Report struct {
	// Name is the human-readable label, e.g. the qualified test name
	Name string

	// Outcome is the executor's aggregate timing
	Outcome executor.Outcome

	// Elapsed is the wall-clock time measured around the whole run by the
	// caller. It is independent of Outcome.TotalElapsed.
	Elapsed time.Duration

	// RunID identifies the run in logs and machine-readable output; optional
	RunID string
}

// Formatter defines the interface for output formatting
type Formatter interface {
	// FormatReport outputs a single benchmark report to the writer
	FormatReport(w io.Writer, report Report) error

	// FormatReports outputs several benchmark reports to the writer
	FormatReports(w io.Writer, reports []Report) error
}

// Option is a functional option for configuring formatters
type Option func(*Options)

// Options holds configuration for formatters
type Options struct {
	// NoColor disables color output
	NoColor bool

	// NoHeaders disables table headers
	NoHeaders bool

	// Wide enables wide output with additional columns
	Wide bool
}

// WithNoColor disables color output
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithNoHeaders disables table headers
func WithNoHeaders(noHeaders bool) Option {
	return func(o *Options) {
		o.NoHeaders = noHeaders
	}
}

// WithWide enables wide output
func WithWide(wide bool) Option {
	return func(o *Options) {
		o.Wide = wide
	}
}

// NewFormatter creates a new formatter based on the specified format.
// Unknown formats fall back to text.
func NewFormatter(format Format, opts ...Option) Formatter {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	switch format {
	case FormatTable:
		return NewTableFormatter(options)
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatText:
		fallthrough
	default:
		return NewTextFormatter(options)
	}
}

// ParseFormat validates a user-supplied format name. The empty string maps to text.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case "":
		return FormatText, true
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return Format(s), true
	default:
		return "", false
	}
}

// toRecord converts a report into the flat structure used by JSON and YAML
func toRecord(r Report) map[string]interface{} {
	record := map[string]interface{}{
		"name":       r.Name,
		"threads":    r.Outcome.Threads,
		"iterations": r.Outcome.Iterations,
		"averageMs":  r.Outcome.AverageMillis(),
		"totalMs":    r.Outcome.TotalMillis(),
		"elapsedMs":  r.Elapsed.Milliseconds(),
		"average":    r.Outcome.AveragePerIteration.String(),
		"total":      r.Outcome.TotalElapsed.String(),
		"elapsed":    r.Elapsed.String(),
	}
	if r.RunID != "" {
		record["runId"] = r.RunID
	}
	return record
}

func toRecords(reports []Report) []map[string]interface{} {
	records := make([]map[string]interface{}, len(reports))
	for i, r := range reports {
		records[i] = toRecord(r)
	}
	return records
}
