// Package bench attaches timing to individual Go tests.
//
// A test opts into concurrent execution by passing a Concurrently marker;
// without one its body runs once. Either way the body is timed by the
// executor and, if it succeeds, a two-line summary is reported:
//
//	func TestCacheGet(t *testing.T) {
//	    rule := bench.NewRule()
//	    rule.Test(t, &bench.Concurrently{Iterations: 50000, Threads: 10}, func() error {
//	        _, err := cache.Get("key")
//	        return err
//	    })
//	}
//
// prints
//
//	cache.TestCacheGet - 10 threads executing 50000 iterations
//	Average time per iteration 0ms, elapsed time 812ms
//
// The average comes from the executor (sum of per-run durations divided by
// iterations). The elapsed time is measured by the Rule around the whole
// execution and is wall-clock time. When any run fails nothing is printed
// and the test fails with the original error.
package bench
