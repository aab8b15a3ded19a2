// Package parallel runs independent functions with bounded concurrency. The
// coordinator uses it to fan out the best-effort agents.
package parallel

import (
	"context"
	"sync"
)

// Run executes every fn with the shared context and collects the results in
// order. Concurrency is capped by the semaphore; a non-positive cap runs
// everything at once.
func Run(ctx context.Context, fns []func(context.Context) error, concurrency int) []error {
	if concurrency <= 0 {
		concurrency = len(fns)
	}
	var wg sync.WaitGroup
	results := make([]error, len(fns))
	sem := make(chan struct{}, concurrency)
	for i, fn := range fns {
		wg.Add(1)
		sem <- struct{}{}
		go func(index int, fn func(context.Context) error) {
			defer wg.Done()
			results[index] = fn(ctx)
			<-sem
		}(i, fn)
	}
	wg.Wait()
	close(sem)
	return results
}
