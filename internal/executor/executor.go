package executor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aryankumar/cbench/internal/util"
)

// Executor times a Work either once or across a worker pool.
// An Executor holds no per-run state and may be shared.
type Executor struct {
	logger     *slog.Logger
	progressFn func(completed, total int)
}

// Option is a functional option for configuring an Executor
type Option func(*Executor)

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithProgress registers a callback invoked after every concurrent run
// completes, with the number of completed runs and the batch size.
// It is called from worker goroutines and must be safe for concurrent use.
func WithProgress(fn func(completed, total int)) Option {
	return func(e *Executor) {
		e.progressFn = fn
	}
}

// New creates an Executor
func New(opts ...Option) *Executor {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Execute runs work according to mode with a default Executor
func Execute(work Work, mode Mode) (Outcome, error) {
	return New().Execute(work, mode)
}

// Execute runs work according to mode and returns its aggregate timing.
//
// A failed run aborts the execution: no Outcome is returned and the error is
// an *IterationError wrapping whatever Run returned. There is no timeout; a
// Run that never returns blocks Execute forever.
func (e *Executor) Execute(work Work, mode Mode) (Outcome, error) {
	if work == nil {
		return Outcome{}, util.NewValidationError("work", nil, "must not be nil")
	}
	if err := mode.Validate(); err != nil {
		return Outcome{}, err
	}

	if !mode.IsConcurrent() {
		return e.executeSequentially(work)
	}
	return e.executeConcurrently(work, mode.Iterations(), mode.Threads())
}

func (e *Executor) executeSequentially(work Work) (Outcome, error) {
	elapsed, err := timeRun(work)
	if err != nil {
		e.logger.Warn("iteration failed", "iteration", 1, "error", err, "duration", elapsed)
		return Outcome{}, &IterationError{Iteration: 1, Err: err}
	}

	return newOutcome(elapsed, 1, 1), nil
}

func (e *Executor) executeConcurrently(work Work, iterations, threads int) (Outcome, error) {
	e.logger.Debug("starting concurrent execution",
		"iterations", iterations,
		"threads", threads)

	startTime := time.Now()

	p := newPool(threads, iterations, e.logger, e.progressFn)
	defer p.close()

	for i := 1; i <= iterations; i++ {
		if err := p.submit(task{iteration: i, work: work}); err != nil {
			return Outcome{}, fmt.Errorf("failed to submit iteration %d: %w", i, err)
		}
	}

	results := p.wait()

	// Collection stops at the first failure in submission order
	if err := FirstError(results); err != nil {
		e.logger.Debug("concurrent execution aborted",
			"failed", CountFailed(results),
			"wall_time", time.Since(startTime))
		return Outcome{}, err
	}

	outcome := newOutcome(TotalDuration(results), iterations, threads)

	e.logger.Debug("concurrent execution completed",
		"iterations", iterations,
		"threads", threads,
		"total", outcome.TotalElapsed,
		"average", outcome.AveragePerIteration,
		"wall_time", time.Since(startTime))

	return outcome, nil
}
