// Package batch fans a normalization function out over a document
// collection with bounded concurrency. Workers share no mutable state
// beyond the engine's own cache, so no coordination is needed here
// besides the output slice's disjoint index writes.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every input with at most workers goroutines and
// returns the outputs in input order. workers <= 0 uses GOMAXPROCS.
// Cancellation stops scheduling new items; fn itself is never
// interrupted mid-string.
func Map(ctx context.Context, inputs []string, workers int, fn func(string) string) ([]string, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]string, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = fn(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
