package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes reports as indented JSON. Durations are in milliseconds.
type JSONFormatter struct{}

// NewJSONFormatter returns a JSON formatter. The options carry nothing JSON
// output uses and may be nil.
func NewJSONFormatter(_ *Options) *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) FormatReport(w io.Writer, r Report) error {
	return writeJSON(w, toRecord(r))
}

// FormatReports writes one array holding every report, in order.
func (f *JSONFormatter) FormatReports(w io.Writer, reports []Report) error {
	return writeJSON(w, toRecords(reports))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
