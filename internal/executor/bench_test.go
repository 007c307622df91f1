package executor

import (
	"fmt"
	"testing"
)

// BenchmarkExecute_Sequential measures the overhead of a single timed run
func BenchmarkExecute_Sequential(b *testing.B) {
	e := New(WithLogger(quietLogger()))
	work := WorkFunc(func() error { return nil })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Execute(work, Sequential()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExecute_Concurrent measures pool setup and teardown with different worker counts
func BenchmarkExecute_Concurrent(b *testing.B) {
	threadCounts := []int{1, 2, 4, 8, 16}

	for _, threads := range threadCounts {
		b.Run(fmt.Sprintf("threads_%d", threads), func(b *testing.B) {
			e := New(WithLogger(quietLogger()))
			work := WorkFunc(func() error { return nil })

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := e.Execute(work, Concurrent(100, threads)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkExecute_Parallel measures executors used from many goroutines at once
func BenchmarkExecute_Parallel(b *testing.B) {
	e := New(WithLogger(quietLogger()))
	work := WorkFunc(func() error { return nil })

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := e.Execute(work, Concurrent(10, 4)); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
