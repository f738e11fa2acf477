// Package fanout runs one function over many inputs with a cap on how many
// calls are in flight. The health registry uses it to probe upstreams and
// the gateway facade uses it to fetch several RAWG games at once.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one input: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// returns one Result per item in input order. A failure in one call does not
// stop the others. Items that have not started when ctx is done get ctx.Err()
// and fn is not called for them. maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Value, results[i].Err = fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
