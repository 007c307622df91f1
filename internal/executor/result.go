package executor

import (
	"fmt"
	"time"
)

// Outcome is the aggregate timing of one benchmark execution.
// AveragePerIteration is TotalElapsed divided by Iterations, truncated.
type Outcome struct {
	// TotalElapsed is the sum of the individual run durations. In concurrent
	// mode this is time spent across all workers, not wall-clock time.
	TotalElapsed time.Duration `json:"totalElapsed" yaml:"totalElapsed"`

	// Iterations is the number of runs
	Iterations int `json:"iterations" yaml:"iterations"`

	// Threads is the number of workers
	Threads int `json:"threads" yaml:"threads"`

	// AveragePerIteration is the mean run duration
	AveragePerIteration time.Duration `json:"averagePerIteration" yaml:"averagePerIteration"`
}

// newOutcome builds an Outcome from the summed durations.
// iterations must be positive.
func newOutcome(total time.Duration, iterations, threads int) Outcome {
	return Outcome{
		TotalElapsed:        total,
		Iterations:          iterations,
		Threads:             threads,
		AveragePerIteration: total / time.Duration(iterations),
	}
}

// AverageMillis returns the average run duration in whole milliseconds
func (o Outcome) AverageMillis() int64 {
	return o.AveragePerIteration.Milliseconds()
}

// TotalMillis returns the summed run duration in whole milliseconds
func (o Outcome) TotalMillis() int64 {
	return o.TotalElapsed.Milliseconds()
}

// String returns a human-readable representation of the outcome
func (o Outcome) String() string {
	return fmt.Sprintf("%d iterations on %d threads, total=%s, avg=%s",
		o.Iterations, o.Threads, o.TotalElapsed, o.AveragePerIteration)
}

// TotalDuration sums the durations of all results
func TotalDuration(results []Result) time.Duration {
	var total time.Duration
	for _, r := range results {
		total += r.Duration
	}
	return total
}

// FirstError returns the error of the earliest failed result in the slice
// order, or nil when every result succeeded
func FirstError(results []Result) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// CountFailed returns the number of failed results
func CountFailed(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Err != nil {
			count++
		}
	}
	return count
}
