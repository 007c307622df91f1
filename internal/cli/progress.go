package cli

import (
	"fmt"
	"io"
	"sync"
)

// progressPrinter writes "completed/total" lines for concurrent runs.
// Workers call update from their own goroutines.
type progressPrinter struct {
	mu sync.Mutex
	w  io.Writer
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w}
}

func (p *progressPrinter) update(completed, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "\rprogress %d/%d", completed, total)
	if completed == total {
		fmt.Fprintln(p.w)
	}
}
