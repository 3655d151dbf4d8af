package parallel

import (
	"runtime"
	"sync"
)

// Threshold is the minimum range length below which For runs
// sequentially on the calling goroutine rather than paying worker
// dispatch overhead.
const Threshold = 1024

// For calls fn(i) for every i in [0, n). When n is at least Threshold
// the range is split into contiguous chunks and run across
// runtime.GOMAXPROCS(0) worker goroutines; callers must only write to
// index-disjoint output slots from fn so results match a sequential
// scan regardless of how the range was chunked (spec §5).
func For(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if n < Threshold {
		for i := 0; i < n; i++ {
			fn(i)
		}

		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// ForErr is For's error-propagating variant: it runs every index to
// completion and returns the first error encountered in index order
// (not necessarily completion order), or nil.
func ForErr(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	errs := make([]error, n)
	For(n, func(i int) { errs[i] = fn(i) })
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
