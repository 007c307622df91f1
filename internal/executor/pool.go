package executor

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

var (
	errPoolShutdown = errors.New("pool is shut down, cannot submit new tasks")
	errQueueFull    = errors.New("task queue is full")
)

// task is one pending run of the work, tagged with its submission index
type task struct {
	iteration int
	work      Work
}

// Result is the outcome of a single run of the work
type Result struct {
	// Iteration is the 1-based submission index
	Iteration int

	// Duration is how long Run took, measured by the worker that ran it
	Duration time.Duration

	// Err is nil on success, otherwise an *IterationError
	Err error
}

// pool is a fixed set of worker goroutines draining a bounded task queue.
// It lives for exactly one concurrent execution; the queue is never exposed.
type pool struct {
	// workers is the number of worker goroutines started
	workers int

	// capacity is the maximum number of tasks the pool accepts
	capacity int

	// queue holds pending tasks, buffered to capacity so submit never blocks
	queue chan task

	// results receives one Result per executed task
	results chan Result

	// wg tracks running workers
	wg sync.WaitGroup

	// submitted counts accepted tasks
	submitted int

	// completed counts finished tasks for progress reporting
	completed atomic.Int32

	// progressFn is called after every finished task when non-nil
	progressFn func(completed, total int)

	logger *slog.Logger

	// shutdown indicates the queue has been closed
	shutdown atomic.Bool
}

// newPool starts exactly workers goroutines servicing a queue of the given capacity.
// Both arguments must be positive.
func newPool(workers, capacity int, logger *slog.Logger, progressFn func(completed, total int)) *pool {
	if logger == nil {
		logger = slog.Default()
	}

	p := &pool{
		workers:    workers,
		capacity:   capacity,
		queue:      make(chan task, capacity),
		results:    make(chan Result, capacity),
		progressFn: progressFn,
		logger:     logger,
	}

	p.logger.Debug("starting workers", "count", workers, "queue_capacity", capacity)

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p
}

// submit enqueues a task. It never blocks: the queue is sized for the whole
// batch up front, so a full queue is a scheduling error.
// Not safe for concurrent use; the executor is the only producer.
func (p *pool) submit(t task) error {
	if p.shutdown.Load() {
		return errPoolShutdown
	}
	if p.submitted >= p.capacity {
		return fmt.Errorf("%w (capacity %d)", errQueueFull, p.capacity)
	}

	select {
	case p.queue <- t:
		p.submitted++
		return nil
	default:
		return fmt.Errorf("%w (capacity %d)", errQueueFull, p.capacity)
	}
}

// wait closes the queue, blocks until every worker has exited and returns
// the results ordered by iteration. Tasks complete in no particular order.
func (p *pool) wait() []Result {
	p.close()

	ordered := make([]Result, p.submitted)
	for res := range p.results {
		if res.Iteration >= 1 && res.Iteration <= len(ordered) {
			ordered[res.Iteration-1] = res
		}
	}

	return ordered
}

// close shuts the queue and joins all workers. Safe to call more than once.
func (p *pool) close() {
	if !p.shutdown.CompareAndSwap(false, true) {
		return
	}

	close(p.queue)
	p.wg.Wait()
	close(p.results)

	p.logger.Debug("worker pool shut down", "workers", p.workers, "tasks", p.submitted)
}

// worker runs tasks until the queue is closed and drained
func (p *pool) worker(workerID int) {
	defer p.wg.Done()

	for t := range p.queue {
		result := p.runTask(workerID, t)
		p.results <- result

		completed := p.completed.Add(1)
		p.logger.Debug("task completed",
			"worker_id", workerID,
			"iteration", t.iteration,
			"success", result.Err == nil,
			"duration", result.Duration,
			"progress", fmt.Sprintf("%d/%d", completed, p.capacity))

		if p.progressFn != nil {
			p.progressFn(int(completed), p.capacity)
		}
	}

	p.logger.Debug("worker finished (no more tasks)", "worker_id", workerID)
}

// runTask times one run of the work
func (p *pool) runTask(workerID int, t task) Result {
	duration, err := timeRun(t.work)

	result := Result{
		Iteration: t.iteration,
		Duration:  duration,
	}

	if err != nil {
		result.Err = &IterationError{Iteration: t.iteration, Err: err}
		p.logger.Warn("iteration failed",
			"worker_id", workerID,
			"iteration", t.iteration,
			"error", err,
			"duration", duration)
	}

	return result
}

// timeRun measures a single call to work.Run. A panic is recovered and
// returned as a *PanicError; the elapsed time is recorded either way.
func timeRun(work Work) (elapsed time.Duration, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
		elapsed = time.Since(start)
	}()

	err = work.Run()
	return elapsed, err
}
