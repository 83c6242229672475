// Package parallel provides parallel execution helpers for callers that
// evaluate many independent samples.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Resolve maps a requested worker count onto a usable one: values below 1
// select NumWorkers.
func Resolve(n int) int {
	if n < 1 {
		return NumWorkers()
	}
	return n
}

// For executes fn for indices [start, end) using n workers.
// Each worker handles one contiguous chunk of indices.
func For(start, end, n int, fn func(i int)) {
	total := end - start
	if total <= 0 {
		return
	}
	if n <= 1 {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (total + n - 1) / n

	for w := range n {
		chunkStart := start + w*chunkSize
		chunkEnd := min(chunkStart+chunkSize, end)
		if chunkStart >= chunkEnd {
			break
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}(chunkStart, chunkEnd)
	}

	wg.Wait()
}

// Do executes multiple functions in parallel and waits for all of them.
func Do(fns ...func()) {
	if len(fns) == 0 {
		return
	}
	if len(fns) == 1 {
		fns[0]()
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		go func(f func()) {
			defer wg.Done()
			f()
		}(fn)
	}
	wg.Wait()
}
