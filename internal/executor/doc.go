// Package executor provides the timed execution engine behind cbench.
//
// A Work is run either once on the calling goroutine (Sequential) or a fixed
// number of times across a fixed-size worker pool (Concurrent). Every run is
// timed individually and the durations are reduced into an Outcome.
//
// # Basic Usage
//
//	outcome, err := executor.Execute(executor.WorkFunc(func() error {
//	    return cache.Get("key")
//	}), executor.Concurrent(1000, 8))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(outcome.AveragePerIteration)
//
// # Timing Semantics
//
// In concurrent mode Outcome.TotalElapsed is the sum of every run's duration,
// i.e. time spent across all workers, not the wall-clock span of the batch.
// AveragePerIteration is TotalElapsed / Iterations with truncating division.
// In sequential mode both equal the single run's duration.
//
// # Worker Pool
//
// Each concurrent execution creates its own pool:
//   - exactly Threads worker goroutines, even when Threads > Iterations
//   - a task queue buffered to exactly Iterations, so submission never blocks
//   - workers are joined before Execute returns, on every path
//
// When Threads < Iterations tasks wait in the queue until a worker frees up.
//
// # Error Handling
//
// Invalid modes fail with a *util.ValidationError (matching
// util.ErrInvalidConfig) before any goroutine starts or any run happens.
//
// A failed run is reported as an *IterationError that unwraps to the error
// returned by Work.Run; a panic becomes a *PanicError inside it. Execute waits
// for the whole batch, then returns the first failure in submission order.
// Sibling runs are never cancelled and nothing is retried.
//
// # Cancellation
//
// None. A Work that never returns blocks its worker and Execute indefinitely.
package executor
