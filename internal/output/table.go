package output

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter formats reports as a table
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// FormatReport outputs a single report as a one-row table
func (f *TableFormatter) FormatReport(w io.Writer, r Report) error {
	return f.FormatReports(w, []Report{r})
}

// FormatReports outputs one row per report followed by a summary line
func (f *TableFormatter) FormatReports(w io.Writer, reports []Report) error {
	if len(reports) == 0 {
		fmt.Fprintln(w, "No results")
		return nil
	}

	colors := NewColorScheme(w, f.options.NoColor)
	table := f.createTable(w)

	headers := []string{"NAME", "THREADS", "ITERATIONS", "AVG(MS)", "ELAPSED(MS)"}
	if f.options.Wide {
		headers = append(headers, "TOTAL(MS)", "AVG", "TOTAL")
	}

	if !f.options.NoHeaders {
		if colors.Disabled {
			table.SetHeader(headers)
		} else {
			coloredHeaders := make([]string, len(headers))
			for i, h := range headers {
				coloredHeaders[i] = colors.Header(h)
			}
			table.SetHeader(coloredHeaders)
		}
	}

	for _, r := range reports {
		table.Append(f.formatReportRow(r, colors))
	}

	table.Render()

	f.printSummary(w, reports, colors)

	return nil
}

// formatReportRow formats a single report as a table row
func (f *TableFormatter) formatReportRow(r Report, colors *ColorScheme) []string {
	row := []string{
		colors.Name("%s", r.Name),
		colors.Count("%d", r.Outcome.Threads),
		colors.Count("%d", r.Outcome.Iterations),
		colors.Duration("%d", r.Outcome.AverageMillis()),
		colors.Duration("%d", r.Elapsed.Milliseconds()),
	}

	if f.options.Wide {
		row = append(row,
			colors.Duration("%d", r.Outcome.TotalMillis()),
			r.Outcome.AveragePerIteration.String(),
			r.Outcome.TotalElapsed.String(),
		)
	}

	return row
}

// createTable creates a new table with borderless, tab-padded columns
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	return table
}

// printSummary prints the number of benchmarks and their combined elapsed time
func (f *TableFormatter) printSummary(w io.Writer, reports []Report, colors *ColorScheme) {
	var elapsed time.Duration
	iterations := 0
	for _, r := range reports {
		elapsed += r.Elapsed
		iterations += r.Outcome.Iterations
	}

	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Summary: %s, %s, %s\n",
		colors.Count("%d benchmarks", len(reports)),
		colors.Count("%d iterations", iterations),
		colors.Duration("elapsed=%s", elapsed.Round(time.Millisecond)))
}
