// Package fanout runs one query per input across many inputs at once,
// under a fixed concurrency ceiling. Repository-wide scans spawn one
// subprocess per input, so the ceiling is what bounds process pressure.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Limit caps how many per-input queries run at once. It is a static
// constant, not adaptive.
const Limit = 100

// Result carries one input's outcome. Err is set when that input's query
// failed; the rest of the batch is unaffected.
type Result[V any] struct {
	Value V
	Err   error
}

// Map runs fn over every item, at most Limit at a time, and returns one
// Result per item in input order. Completion order never reorders the
// output; callers re-sort by their own key before presenting. A failing
// item records its error in its slot instead of aborting the batch, and
// no retries are performed.
func Map[T, V any](ctx context.Context, items []T, fn func(ctx context.Context, item T) (V, error)) []Result[V] {
	results := make([]Result[V], len(items))

	var g errgroup.Group
	g.SetLimit(Limit)

	for i, item := range items {
		g.Go(func() error {
			value, err := fn(ctx, item)
			results[i] = Result[V]{Value: value, Err: err}
			return nil
		})
	}

	// Workers never return an error; Wait only joins them.
	_ = g.Wait()

	return results
}
