package executor

import (
	"fmt"

	"github.com/aryankumar/cbench/internal/util"
)

// Mode selects how many times and on how many workers a Work runs.
// The zero value is sequential.
type Mode struct {
	concurrent bool
	iterations int
	threads    int
}

// Sequential runs the work exactly once on the calling goroutine
func Sequential() Mode {
	return Mode{}
}

// Concurrent runs the work iterations times spread across threads workers.
// The counts are checked by Validate, which Execute calls before doing anything.
func Concurrent(iterations, threads int) Mode {
	return Mode{
		concurrent: true,
		iterations: iterations,
		threads:    threads,
	}
}

// IsConcurrent reports whether the mode fans work out to a worker pool
func (m Mode) IsConcurrent() bool {
	return m.concurrent
}

// Iterations returns the number of times the work runs
func (m Mode) Iterations() int {
	if !m.concurrent {
		return 1
	}
	return m.iterations
}

// Threads returns the number of workers
func (m Mode) Threads() int {
	if !m.concurrent {
		return 1
	}
	return m.threads
}

// Validate returns a *util.ValidationError when a concurrent mode has a
// non-positive iteration or thread count
func (m Mode) Validate() error {
	if !m.concurrent {
		return nil
	}
	if m.iterations < 1 {
		return util.NewValidationError("iterations", m.iterations, "must be at least 1")
	}
	if m.threads < 1 {
		return util.NewValidationError("threads", m.threads, "must be at least 1")
	}
	return nil
}

// String returns a human-readable representation of the mode
func (m Mode) String() string {
	if !m.concurrent {
		return "sequential"
	}
	return fmt.Sprintf("concurrent(iterations=%d, threads=%d)", m.iterations, m.threads)
}
