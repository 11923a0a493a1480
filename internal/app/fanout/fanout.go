// Package fanout runs a function over a slice with a fixed number of
// goroutines and returns the outcomes in input order.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight.
// Values below 1 are treated as 1.
//
// An item still waiting for a slot when ctx is canceled records ctx.Err()
// and fn is never called for it. Calls already running are left to honor
// ctx themselves. Run returns once every item has a result; an empty input
// yields an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Failure pairs a failed result with its input position.
type Failure struct {
	Index int
	Err   error
}

// Partition splits results into successful values (input order kept) and
// failures.
func Partition[R any](results []Result[R]) ([]R, []Failure) {
	values := make([]R, 0, len(results))
	var failures []Failure
	for i, r := range results {
		if r.Err != nil {
			failures = append(failures, Failure{Index: i, Err: r.Err})
			continue
		}
		values = append(values, r.Value)
	}
	return values, failures
}
