// Package strategy schedules strict evaluation of values reached
// through a read-capable optic. A Strategy forces a batch of values as
// an observable side effect; Evaluating adapts any optic into a
// function that forces its targets and returns the container unchanged.
package strategy

import (
	"sync"

	"github.com/byorgey/lens/functional"
	"github.com/byorgey/lens/optics"
)

// A Strategy forces evaluation of a batch of values, in whatever order
// and with whatever parallelism it chooses. It must not return before
// all forcing has completed.
type Strategy[A any] func(targets []A)

// Forcing creates a strategy applying force to each value in order.
// The force function determines the evaluation depth.
func Forcing[T any](force func(T)) Strategy[T] {
	return func(targets []T) {
		for _, v := range targets {
			force(v)
		}
	}
}

// Sequential creates a strategy forcing lazy values one at a time in
// order.
func Sequential[T any]() Strategy[*functional.Lazy[T]] {
	return Forcing(func(l *functional.Lazy[T]) {
		l.Get()
	})
}

// Parallel creates a strategy forcing lazy values concurrently across
// at most workers goroutines. It waits for all forcing to complete
// before returning. A workers value below one means one.
func Parallel[T any](workers int) Strategy[*functional.Lazy[T]] {
	if workers < 1 {
		workers = 1
	}
	return func(targets []*functional.Lazy[T]) {
		jobs := make(chan *functional.Lazy[T])
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for l := range jobs {
					l.Get()
				}
			}()
		}
		for _, l := range targets {
			jobs <- l
		}
		close(jobs)
		wg.Wait()
	}
}

// Evaluating creates a function that forces the values focused by o
// using strat and returns the container unchanged. For a traversal the
// targets are forced in visitation order (subject to the strategy's
// own scheduling); the forcing is the only observable effect.
func Evaluating[S, A any](o optics.Reader[S, A], strat Strategy[A]) func(S) S {
	return func(source S) S {
		strat(o.Targets(source))
		return source
	}
}
