package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes reports as a YAML document with two-space indentation
type YAMLFormatter struct{}

// NewYAMLFormatter returns a YAML formatter; opts may be nil
func NewYAMLFormatter(_ *Options) *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) FormatReport(w io.Writer, r Report) error {
	return writeYAML(w, toRecord(r))
}

// FormatReports writes a single sequence document
func (f *YAMLFormatter) FormatReports(w io.Writer, reports []Report) error {
	return writeYAML(w, toRecords(reports))
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
