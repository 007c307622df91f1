package executor

import (
	"fmt"

	"github.com/aryankumar/cbench/internal/util"
)

// IterationError reports that one run of the work failed.
// Unwrap returns the original error unchanged.
type IterationError struct {
	// Iteration is the 1-based submission index of the failed run
	Iteration int

	// Err is the error returned by Work.Run
	Err error
}

// Error implements the error interface
func (e *IterationError) Error() string {
	return fmt.Sprintf("iteration %d: %v", e.Iteration, e.Err)
}

// Unwrap returns the original error for errors.Is/As compatibility
func (e *IterationError) Unwrap() error {
	return e.Err
}

// Is makes every IterationError match util.ErrWorkFailed
func (e *IterationError) Is(target error) bool {
	return target == util.ErrWorkFailed
}

// PanicError is the error recorded when Work.Run panics instead of returning
type PanicError struct {
	Value interface{}
}

// Error implements the error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("work panicked: %v", e.Value)
}

// Unwrap returns the panic value when it is itself an error
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
