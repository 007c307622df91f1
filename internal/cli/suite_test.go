package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aryankumar/cbench/internal/util"
	"github.com/tidwall/gjson"
)

const suiteConfig = `defaults:
  outputFormat: text
benchmarks:
  - name: first
    command: ["true"]
  - name: second
    command: ["sh", "-c", "exit 0"]
    iterations: 4
    threads: 2
  - name: third
    command: ["true"]
    iterations: 2
    threads: 1
`

const failingSuiteConfig = `benchmarks:
  - name: ok
    command: ["true"]
  - name: broken
    command: ["false"]
  - name: never
    command: ["true"]
`

func TestSuiteCommand_Text(t *testing.T) {
	path := writeConfig(t, suiteConfig)

	stdout, _, err := executeCLI(t, context.Background(), "--config", path, "--no-color", "suite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		"first - 1 threads executing 1 iterations",
		"second - 2 threads executing 4 iterations",
		"third - 1 threads executing 2 iterations",
	}

	last := -1
	for _, want := range expected {
		idx := strings.Index(stdout, want)
		if idx < 0 {
			t.Fatalf("expected output to contain %q, got:\n%s", want, stdout)
		}
		if idx < last {
			t.Errorf("expected %q to follow the previous benchmark", want)
		}
		last = idx
	}

	if n := strings.Count(stdout, "Average time per iteration"); n != 3 {
		t.Errorf("expected 3 average lines, got %d", n)
	}
}

func TestSuiteCommand_SelectByName(t *testing.T) {
	path := writeConfig(t, suiteConfig)

	// Declared order wins over argument order
	stdout, _, err := executeCLI(t, context.Background(), "--config", path, "--no-color", "suite", "third", "first")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(stdout, "second") {
		t.Errorf("expected second to be skipped, got:\n%s", stdout)
	}

	first := strings.Index(stdout, "first -")
	third := strings.Index(stdout, "third -")
	if first < 0 || third < 0 || first > third {
		t.Errorf("expected first before third, got:\n%s", stdout)
	}
}

func TestSuiteCommand_UnknownName(t *testing.T) {
	path := writeConfig(t, suiteConfig)

	_, _, err := executeCLI(t, context.Background(), "--config", path, "suite", "first", "missing")
	if err == nil {
		t.Fatal("expected error for unknown benchmark")
	}

	if !strings.Contains(err.Error(), `benchmark "missing" not found`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSuiteCommand_Table(t *testing.T) {
	path := writeConfig(t, suiteConfig)

	tests := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
	}{
		{
			name:        "narrow",
			args:        []string{"suite"},
			contains:    []string{"NAME", "ITERATIONS", "first", "second", "third", "Summary: 3 benchmarks, 7 iterations"},
			notContains: []string{"TOTAL(MS)"},
		},
		{
			name:     "wide",
			args:     []string{"suite", "--wide"},
			contains: []string{"TOTAL(MS)", "Summary: 3 benchmarks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", path, "--no-color", "-o", "table"}, tt.args...)

			stdout, _, err := executeCLI(t, context.Background(), args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, want := range tt.contains {
				if !strings.Contains(stdout, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, stdout)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(stdout, unwanted) {
					t.Errorf("expected output not to contain %q", unwanted)
				}
			}

			// One table, not one per benchmark
			if n := strings.Count(stdout, "Summary:"); n != 1 {
				t.Errorf("expected a single summary, got %d", n)
			}
		})
	}
}

func TestSuiteCommand_FirstFailureAborts(t *testing.T) {
	path := writeConfig(t, failingSuiteConfig)

	t.Run("text", func(t *testing.T) {
		stdout, _, err := executeCLI(t, context.Background(), "--config", path, "--no-color", "suite")
		if err == nil {
			t.Fatal("expected suite to fail")
		}

		if !util.IsWorkFailure(err) {
			t.Errorf("expected work failure, got %v", err)
		}
		if !strings.Contains(err.Error(), `benchmark "broken" failed`) {
			t.Errorf("expected failing benchmark to be named, got %v", err)
		}

		if !strings.Contains(stdout, "ok - 1 threads") {
			t.Errorf("expected completed benchmark to be reported, got:\n%s", stdout)
		}
		if strings.Contains(stdout, "broken -") || strings.Contains(stdout, "never") {
			t.Errorf("expected nothing after the failure, got:\n%s", stdout)
		}
	})

	t.Run("json keeps completed results", func(t *testing.T) {
		stdout, _, err := executeCLI(t, context.Background(), "--config", path, "-o", "json", "suite")
		if err == nil {
			t.Fatal("expected suite to fail")
		}

		if !gjson.Valid(stdout) {
			t.Fatalf("output is not valid JSON:\n%s", stdout)
		}

		names := gjson.Get(stdout, "#.name").Array()
		if len(names) != 1 || names[0].String() != "ok" {
			t.Errorf("expected only the ok benchmark, got %v", names)
		}
	})
}

func TestSuiteCommand_NoBenchmarks(t *testing.T) {
	stdout, stderr, err := executeCLI(t, context.Background(), "--config", missingConfig(t), "suite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stdout != "" {
		t.Errorf("expected no report, got %q", stdout)
	}
	if !strings.Contains(stderr, "No benchmarks configured") {
		t.Errorf("expected notice on stderr, got %q", stderr)
	}
}

func TestSuiteCommand_InvalidConfig(t *testing.T) {
	path := writeConfig(t, `benchmarks:
  - name: half
    command: ["true"]
    iterations: 3
`)

	_, _, err := executeCLI(t, context.Background(), "--config", path, "suite")
	if err == nil {
		t.Fatal("expected validation error")
	}

	if !util.IsInvalidConfig(err) {
		t.Errorf("expected invalid config error, got %v", err)
	}
}

func TestSuiteCommand_MetricsFile(t *testing.T) {
	path := writeConfig(t, suiteConfig)
	metricsPath := filepath.Join(t.TempDir(), "suite.prom")

	_, _, err := executeCLI(t, context.Background(),
		"--config", path, "--no-color", "suite", "--metrics-file", metricsPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatalf("expected metrics file: %v", err)
	}

	for _, name := range []string{"first", "second", "third"} {
		want := `cbench_runs_total{name="` + name + `"} 1`
		if !strings.Contains(string(data), want) {
			t.Errorf("expected metrics to contain %q", want)
		}
	}
}
