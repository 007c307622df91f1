package output

import (
	"fmt"
	"io"
)

// TextFormatter writes the classic two-line console summary:
//
//	<name> - <threads> threads executing <iterations> iterations
//	Average time per iteration <avg>ms, elapsed time <elapsed>ms
//
// Tooling parses these lines, so field order and units must not change.
type TextFormatter struct {
	options *Options
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(opts *Options) *TextFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TextFormatter{
		options: opts,
	}
}

// FormatReport writes the two summary lines for one report
func (f *TextFormatter) FormatReport(w io.Writer, r Report) error {
	colors := NewColorScheme(w, f.options.NoColor)

	if _, err := fmt.Fprintf(w, "%s - %d threads executing %d iterations\n",
		colors.Name("%s", r.Name), r.Outcome.Threads, r.Outcome.Iterations); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Average time per iteration %sms, elapsed time %sms\n",
		colors.Duration("%d", r.Outcome.AverageMillis()),
		colors.Duration("%d", r.Elapsed.Milliseconds()))
	return err
}

// FormatReports writes the summary lines of every report in order
func (f *TextFormatter) FormatReports(w io.Writer, reports []Report) error {
	for _, r := range reports {
		if err := f.FormatReport(w, r); err != nil {
			return err
		}
	}
	return nil
}
