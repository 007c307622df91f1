package integration

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aryankumar/cbench/internal/config"
	"github.com/aryankumar/cbench/internal/executor"
	"github.com/aryankumar/cbench/internal/output"
	"github.com/aryankumar/cbench/internal/util"
	"github.com/aryankumar/cbench/pkg/bench"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// TestFullWorkflow tests the complete workflow from config file to rendered report
func TestFullWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	path := filepath.Join(t.TempDir(), "cbench.yaml")

	// Write the suite through the config manager
	writer := config.NewManager(path)
	if _, err := writer.Load(); err != nil {
		t.Fatalf("failed to load empty config: %v", err)
	}

	suite := []config.BenchmarkConfig{
		{Name: "once", Command: []string{"true"}},
		{Name: "fanout", Command: []string{"true"}, Iterations: 12, Threads: 4},
		{Name: "serial", Command: []string{"true"}, Iterations: 3, Threads: 1},
	}
	for _, b := range suite {
		if err := writer.SetBenchmark(b); err != nil {
			t.Fatalf("failed to add %s: %v", b.Name, err)
		}
	}
	if err := writer.Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Read it back the way "cbench suite" does
	reader := config.NewManager(path)
	if _, err := reader.Load(); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	benchmarks, err := reader.SelectBenchmarks(nil)
	if err != nil {
		t.Fatalf("failed to select benchmarks: %v", err)
	}
	if len(benchmarks) != len(suite) {
		t.Fatalf("expected %d benchmarks, got %d", len(suite), len(benchmarks))
	}

	recorder := output.NewRecorder()
	rule := bench.NewRule(bench.WithReporter(recorder), bench.WithLogger(quietLogger()))

	for _, b := range benchmarks {
		var calls atomic.Int32
		outcome, err := rule.Run(b.Name, b.Marker(), func() error {
			calls.Add(1)
			time.Sleep(time.Millisecond)
			return nil
		})
		if err != nil {
			t.Fatalf("benchmark %s failed: %v", b.Name, err)
		}

		mode := bench.ModeFor(b.Marker())
		if int(calls.Load()) != mode.Iterations() {
			t.Errorf("%s: expected %d invocations, got %d", b.Name, mode.Iterations(), calls.Load())
		}
		if outcome.Iterations != mode.Iterations() || outcome.Threads != mode.Threads() {
			t.Errorf("%s: outcome %s does not match mode %s", b.Name, outcome, mode)
		}
	}

	reports := recorder.Reports()
	if len(reports) != len(suite) {
		t.Fatalf("expected %d reports, got %d", len(suite), len(reports))
	}
	for i, r := range reports {
		if r.Name != suite[i].Name {
			t.Errorf("report %d: expected %s, got %s", i, suite[i].Name, r.Name)
		}
	}

	var buf bytes.Buffer
	table := output.NewFormatter(output.FormatTable, output.WithNoColor(true))
	if err := recorder.Flush(&buf, table); err != nil {
		t.Fatalf("failed to render table: %v", err)
	}
	if !strings.Contains(buf.String(), "Summary: 3 benchmarks, 16 iterations") {
		t.Errorf("unexpected summary:\n%s", buf.String())
	}
}

// TestParallelRulesShareReporter verifies reports from concurrently running
// benchmarks never interleave their lines
func TestParallelRulesShareReporter(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	var buf bytes.Buffer
	reporter := output.NewReporter(&buf, output.NewFormatter(output.FormatText, output.WithNoColor(true)))
	rule := bench.NewRule(bench.WithReporter(reporter), bench.WithLogger(quietLogger()))

	const benchmarks = 8
	var wg sync.WaitGroup
	errs := make(chan error, benchmarks)

	for i := 0; i < benchmarks; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := rule.Run(fmt.Sprintf("parallel-%d", i), &bench.Concurrently{Iterations: 4, Threads: 2}, func() error {
				time.Sleep(time.Millisecond)
				return nil
			})
			errs <- err
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2*benchmarks {
		t.Fatalf("expected %d lines, got %d:\n%s", 2*benchmarks, len(lines), buf.String())
	}

	for i := 0; i < len(lines); i += 2 {
		if !strings.Contains(lines[i], " - 2 threads executing 4 iterations") {
			t.Errorf("line %d: expected header, got %q", i, lines[i])
		}
		if !strings.HasPrefix(lines[i+1], "Average time per iteration") {
			t.Errorf("line %d: expected average line, got %q", i+1, lines[i+1])
		}
	}
}

// TestFailureReportsNothing verifies a failing benchmark surfaces the first
// failing iteration and leaves the reporter untouched
func TestFailureReportsNothing(t *testing.T) {
	recorder := output.NewRecorder()
	rule := bench.NewRule(bench.WithReporter(recorder), bench.WithLogger(quietLogger()))

	errDisk := errors.New("disk full")
	var calls atomic.Int32

	_, err := rule.Run("flaky", &bench.Concurrently{Iterations: 5, Threads: 1}, func() error {
		if calls.Add(1) == 3 {
			return errDisk
		}
		return nil
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var iterErr *executor.IterationError
	if !errors.As(err, &iterErr) {
		t.Fatalf("expected *executor.IterationError, got %T", err)
	}
	if iterErr.Iteration != 3 {
		t.Errorf("expected iteration 3 to fail, got %d", iterErr.Iteration)
	}
	if !errors.Is(err, errDisk) || !util.IsWorkFailure(err) {
		t.Errorf("expected error to match the work failure, got %v", err)
	}

	if n := len(recorder.Reports()); n != 0 {
		t.Errorf("expected no reports, got %d", n)
	}
}
