package parallelutil

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers is the worker-count ceiling for ForEach/ForEachReduce. Callers
// that need a different width (e.g. the CLI's --cores flag) assign it
// directly before starting a run.
var Workers = runtime.GOMAXPROCS(0)

// ForEach runs worker(i) for every i in [0, n) across a bounded pool of
// goroutines and waits for all of them to finish (or for the first error,
// which cancels the remaining work via ctx). n == 0 is a no-op.
func ForEach(ctx context.Context, n int, worker func(i int) error) error {
	if n <= 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(clampWorkers(n))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return worker(i)
		})
	}
	return g.Wait()
}

// ForEachReduce runs worker(i) for every i in [0, n), combining results
// pairwise with combine into a single value. zero is both the identity
// used to seed each goroutine's local accumulator and the value returned
// for n == 0.
func ForEachReduce[T any](ctx context.Context, n int, zero T, worker func(i int) (T, error), combine func(a, b T) T) (T, error) {
	if n <= 0 {
		return zero, nil
	}
	workers := clampWorkers(n)
	partials := make([]T, workers)
	for i := range partials {
		partials[i] = zero
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		g.Go(func() error {
			acc := zero
			for i := start; i < end; i++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				v, err := worker(i)
				if err != nil {
					return err
				}
				acc = combine(acc, v)
			}
			partials[w] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, err
	}
	result := zero
	for _, p := range partials {
		result = combine(result, p)
	}
	return result, nil
}

func clampWorkers(n int) int {
	w := Workers
	if w <= 0 {
		w = 1
	}
	if n < w {
		w = n
	}
	return w
}
