// Package output renders benchmark reports.
//
// A Report pairs an executor.Outcome with the label of the benchmarked unit
// and the wall-clock time measured around it by the caller. Formatters turn
// reports into text, table, JSON or YAML; Reporters decide where they go.
//
// # Text Format
//
// The default format prints two lines per benchmark:
//
//	store.TestGet - 10 threads executing 50000 iterations
//	Average time per iteration 3ms, elapsed time 15012ms
//
// Both values are whole milliseconds. The average comes from the executor;
// the elapsed time is the caller's outer measurement, so the two are not
// derived from each other. Scripts parse this output, so it must stay stable.
//
// # Other Formats
//
//	formatter := output.NewFormatter(output.FormatTable, output.WithWide(true))
//	formatter.FormatReports(os.Stdout, reports)
//
// Table output uses borderless columns and colors on a TTY. JSON and YAML
// emit one record per report with millisecond and human-readable fields.
//
// # Reporters
//
//   - WriterReporter formats each report immediately (the console sink)
//   - Recorder buffers reports for a combined rendering at the end
//   - MultiReporter fans out to several reporters
//   - MetricsReporter keeps Prometheus gauges per benchmark name
package output
