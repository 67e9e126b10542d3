package atomspace

import (
	"sync"

	"github.com/gitrdm/goatomspace/internal/parallel"
)

// QueryAll evaluates every pattern against the store concurrently on a
// bounded worker pool and merges the per-pattern results into a single
// stream. Result order across patterns is unspecified. Closing the
// returned stream early stops all in-flight pattern queries.
//
// maxWorkers bounds the number of patterns evaluated at once; a
// non-positive value defaults to the number of CPU cores.
func QueryAll(store *Store, maxWorkers int, patterns ...Atom) *Stream {
	out := NewStream()
	if store == nil || len(patterns) == 0 {
		out.Close()
		return out
	}

	go func() {
		pool := parallel.NewWorkerPool(maxWorkers)
		var wg sync.WaitGroup

		for _, pattern := range patterns {
			p := pattern
			wg.Add(1)
			err := pool.Submit(func() {
				defer wg.Done()
				forEach(store.Query(p), func(r Result) bool {
					return out.Put(r)
				})
			})
			if err != nil {
				wg.Done()
			}
		}

		wg.Wait()
		pool.Shutdown()
		out.Close()
	}()
	return out
}
