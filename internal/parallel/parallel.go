// Package parallel runs independent, CPU-bound tasks across goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether tasks may run concurrently.
	NumWorkers int  // Upper bound on running goroutines. <= 0 means runtime.NumCPU().
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
	}
}

// Workers returns the number of goroutines For would start for n tasks.
func (c Config) Workers(n int) int {
	if !c.Enabled || n < 2 {
		return 1
	}
	w := c.NumWorkers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	return max(min(w, n), 1)
}

// For executes f(i) exactly once for every i in [0, n) and returns when all
// calls have finished. Tasks are handed out in index order; completion order
// is unspecified when running in parallel.
func For(n int, f func(i int), cfg Config) {
	workers := cfg.Workers(n)
	if workers == 1 {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var (
		wg   sync.WaitGroup
		next atomic.Int64
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				f(i)
			}
		}()
	}
	wg.Wait()
}
