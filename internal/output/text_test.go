package output

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestTextFormatter_FormatReport(t *testing.T) {
	tests := []struct {
		name     string
		report   Report
		expected string
	}{
		{
			name:   "concurrent",
			report: sampleReport("store.TestGet", 50000, 10, 3*time.Millisecond, 15012*time.Millisecond),
			expected: "store.TestGet - 10 threads executing 50000 iterations\n" +
				"Average time per iteration 3ms, elapsed time 15012ms\n",
		},
		{
			name:   "sequential",
			report: sampleReport("store.TestPut", 1, 1, 8*time.Millisecond, 9*time.Millisecond),
			expected: "store.TestPut - 1 threads executing 1 iterations\n" +
				"Average time per iteration 8ms, elapsed time 9ms\n",
		},
		{
			name:   "sub-millisecond values truncate to zero",
			report: sampleReport("fast", 20, 5, 900*time.Microsecond, 999*time.Microsecond),
			expected: "fast - 5 threads executing 20 iterations\n" +
				"Average time per iteration 0ms, elapsed time 0ms\n",
		},
		{
			name:   "percent sign in name is kept literally",
			report: sampleReport("Test100%", 2, 2, time.Millisecond, 2*time.Millisecond),
			expected: "Test100% - 2 threads executing 2 iterations\n" +
				"Average time per iteration 1ms, elapsed time 2ms\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewTextFormatter(&Options{NoColor: true}).FormatReport(&buf, tt.report); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("expected:\n%q\ngot:\n%q", tt.expected, buf.String())
			}
		})
	}
}

func TestTextFormatter_FormatReports(t *testing.T) {
	reports := []Report{
		sampleReport("a", 1, 1, time.Millisecond, time.Millisecond),
		sampleReport("b", 4, 2, 2*time.Millisecond, 5*time.Millisecond),
	}

	var buf bytes.Buffer
	if err := NewTextFormatter(nil).FormatReports(&buf, reports); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "a - 1 threads executing 1 iterations\n" +
		"Average time per iteration 1ms, elapsed time 1ms\n" +
		"b - 2 threads executing 4 iterations\n" +
		"Average time per iteration 2ms, elapsed time 5ms\n"
	if buf.String() != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTextFormatter_WriteError(t *testing.T) {
	err := NewTextFormatter(nil).FormatReport(failingWriter{}, sampleReport("a", 1, 1, 0, 0))
	if err == nil {
		t.Fatal("expected write error, got nil")
	}
}
