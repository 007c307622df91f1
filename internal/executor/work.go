package executor

// Work is a single benchmarked operation. Run executes it once and either
// returns nil or the error that made it fail. The executor never inspects
// the error beyond wrapping it with the iteration it came from.
type Work interface {
	Run() error
}

// WorkFunc adapts an ordinary function to the Work interface
type WorkFunc func() error

// Run calls f()
func (f WorkFunc) Run() error {
	return f()
}
