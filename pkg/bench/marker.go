package bench

import "github.com/aryankumar/cbench/internal/executor"

// Concurrently marks a test as eligible for concurrent execution.
// Both fields must be positive; the executor rejects anything else
// before running the body.
type Concurrently struct {
	// Iterations is the total number of times the body runs
	Iterations int `json:"iterations" yaml:"iterations" mapstructure:"iterations"`

	// Threads is the number of workers sharing those iterations
	Threads int `json:"threads" yaml:"threads" mapstructure:"threads"`
}

// ModeFor maps a marker to an execution mode: nil runs sequentially
func ModeFor(marker *Concurrently) executor.Mode {
	if marker == nil {
		return executor.Sequential()
	}
	return executor.Concurrent(marker.Iterations, marker.Threads)
}

// Work is the unit being benchmarked
type Work = executor.Work

// WorkFunc adapts a function to Work
type WorkFunc = executor.WorkFunc

// Outcome is the aggregate timing of one benchmark
type Outcome = executor.Outcome
