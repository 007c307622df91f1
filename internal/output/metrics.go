package output

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsReporter keeps the latest outcome of every benchmark as Prometheus
// gauges, labelled by benchmark name. The gauges can be written as a textfile
// for the node_exporter textfile collector.
type MetricsReporter struct {
	registry   *prometheus.Registry
	average    *prometheus.GaugeVec
	total      *prometheus.GaugeVec
	elapsed    *prometheus.GaugeVec
	iterations *prometheus.GaugeVec
	threads    *prometheus.GaugeVec
	runs       *prometheus.CounterVec
}

// NewMetricsReporter creates a reporter with its own registry
func NewMetricsReporter() *MetricsReporter {
	labels := []string{"name"}

	m := &MetricsReporter{
		registry: prometheus.NewRegistry(),
		average: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cbench_iteration_average_seconds",
			Help: "Average time per iteration of the last run.",
		}, labels),
		total: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cbench_iterations_total_seconds",
			Help: "Sum of the per-iteration times of the last run.",
		}, labels),
		elapsed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cbench_elapsed_seconds",
			Help: "Wall-clock time of the last run.",
		}, labels),
		iterations: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cbench_iterations",
			Help: "Iterations executed by the last run.",
		}, labels),
		threads: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cbench_threads",
			Help: "Worker threads used by the last run.",
		}, labels),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cbench_runs_total",
			Help: "Number of successful runs reported.",
		}, labels),
	}

	m.registry.MustRegister(m.average, m.total, m.elapsed, m.iterations, m.threads, m.runs)
	return m
}

// Report implements Reporter
func (m *MetricsReporter) Report(r Report) error {
	m.average.WithLabelValues(r.Name).Set(r.Outcome.AveragePerIteration.Seconds())
	m.total.WithLabelValues(r.Name).Set(r.Outcome.TotalElapsed.Seconds())
	m.elapsed.WithLabelValues(r.Name).Set(r.Elapsed.Seconds())
	m.iterations.WithLabelValues(r.Name).Set(float64(r.Outcome.Iterations))
	m.threads.WithLabelValues(r.Name).Set(float64(r.Outcome.Threads))
	m.runs.WithLabelValues(r.Name).Inc()
	return nil
}

// Gatherer exposes the registry, e.g. for promhttp or testutil
func (m *MetricsReporter) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile atomically writes the gauges in the text exposition format
func (m *MetricsReporter) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
