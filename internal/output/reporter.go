package output

import (
	"io"
	"sync"
)

// Reporter receives finished benchmark reports. Implementations must be safe
// for concurrent use because parallel tests may report at the same time.
type Reporter interface {
	Report(r Report) error
}

// WriterReporter formats every report straight to a writer
type WriterReporter struct {
	mu        sync.Mutex
	w         io.Writer
	formatter Formatter
}

// NewReporter creates a reporter writing to w with the given formatter.
// A nil formatter means text.
func NewReporter(w io.Writer, formatter Formatter) *WriterReporter {
	if formatter == nil {
		formatter = NewTextFormatter(nil)
	}
	return &WriterReporter{
		w:         w,
		formatter: formatter,
	}
}

// Report writes one report; lines of concurrent reports never interleave
func (r *WriterReporter) Report(report Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.formatter.FormatReport(r.w, report)
}

// Recorder keeps reports in memory so they can be rendered together later
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report appends a report
func (r *Recorder) Report(report Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = append(r.reports, report)
	return nil
}

// Reports returns a copy of the recorded reports in arrival order
func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Flush renders all recorded reports with the formatter
func (r *Recorder) Flush(w io.Writer, formatter Formatter) error {
	return formatter.FormatReports(w, r.Reports())
}

// MultiReporter fans a report out to several reporters, stopping at the first error
type MultiReporter []Reporter

// Report implements Reporter
func (m MultiReporter) Report(report Report) error {
	for _, r := range m {
		if err := r.Report(report); err != nil {
			return err
		}
	}
	return nil
}
