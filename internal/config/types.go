package config

import "github.com/aryankumar/cbench/pkg/bench"

// BenchConfig represents the cbench configuration file structure
type BenchConfig struct {
	// Defaults contains default settings for every run
	Defaults DefaultsConfig `yaml:"defaults,omitempty" json:"defaults,omitempty"`

	// Benchmarks are the named commands run by "cbench suite"
	Benchmarks []BenchmarkConfig `yaml:"benchmarks,omitempty" json:"benchmarks,omitempty"`
}

// DefaultsConfig contains default configuration values
type DefaultsConfig struct {
	// Iterations applied to "cbench run" when the flag is not given; 0 means sequential
	Iterations int `yaml:"iterations,omitempty" json:"iterations,omitempty"`

	// Threads applied to "cbench run" when the flag is not given; 0 means sequential
	Threads int `yaml:"threads,omitempty" json:"threads,omitempty"`

	// OutputFormat is the default output format (text, table, json, yaml)
	OutputFormat string `yaml:"outputFormat,omitempty" json:"outputFormat,omitempty"`

	// NoColor disables colored output
	NoColor bool `yaml:"noColor,omitempty" json:"noColor,omitempty"`
}

// BenchmarkConfig describes one benchmarked command
type BenchmarkConfig struct {
	// Name labels the benchmark in reports
	Name string `yaml:"name" json:"name"`

	// Command is the program and its arguments
	Command []string `yaml:"command" json:"command"`

	// Dir is the working directory for the command (default: current directory)
	Dir string `yaml:"dir,omitempty" json:"dir,omitempty"`

	// Iterations and Threads select concurrent mode; both zero means sequential
	Iterations int `yaml:"iterations,omitempty" json:"iterations,omitempty"`
	Threads    int `yaml:"threads,omitempty" json:"threads,omitempty"`
}

// Marker returns the concurrency marker for the benchmark, nil when sequential
func (b BenchmarkConfig) Marker() *bench.Concurrently {
	return markerFor(b.Iterations, b.Threads)
}

// Marker returns the default concurrency marker, nil when sequential
func (d DefaultsConfig) Marker() *bench.Concurrently {
	return markerFor(d.Iterations, d.Threads)
}

func markerFor(iterations, threads int) *bench.Concurrently {
	if iterations == 0 && threads == 0 {
		return nil
	}
	return &bench.Concurrently{Iterations: iterations, Threads: threads}
}
