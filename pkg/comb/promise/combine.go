package promise

import (
	"errors"
	"sync"
)

// All fulfills with every value once all candidates have fulfilled, in
// argument order, or rejects with the first rejection to arrive. With no
// candidates it fulfills immediately with an empty slice.
func All[T any](ps ...*Promise[T]) *Promise[[]T] {
	next := newPromise[[]T]()
	if len(ps) == 0 {
		next.resolve([]T{})
		return next
	}

	var (
		mu      sync.Mutex
		waiting = len(ps)
		values  = make([]T, len(ps))
	)
	for i, p := range ps {
		i := i // pre-1.22 loop semantics: capture per iteration, not shared
		p.subscribe(func(v T, err error) {
			if err != nil {
				next.reject(err)
				return
			}
			mu.Lock()
			values[i] = v
			waiting--
			last := waiting == 0
			mu.Unlock()
			if last {
				next.resolve(values)
			}
		})
	}
	return next
}

// Race settles with the first candidate to settle, whatever its outcome.
// With no candidates the result stays pending forever.
func Race[T any](ps ...*Promise[T]) *Promise[T] {
	next := newPromise[T]()
	for _, p := range ps {
		p.subscribe(func(v T, err error) {
			if err != nil {
				next.reject(err)
				return
			}
			next.resolve(v)
		})
	}
	return next
}

// Any fulfills with the first fulfillment. If every candidate rejects, it
// rejects with all reasons joined; Errors recovers the individual reasons.
// With no candidates it rejects immediately.
func Any[T any](ps ...*Promise[T]) *Promise[T] {
	next := newPromise[T]()
	if len(ps) == 0 {
		next.reject(errors.New("promise: nothing to settle with"))
		return next
	}

	var (
		mu      sync.Mutex
		waiting = len(ps)
		reasons = make([]error, len(ps))
	)
	for i, p := range ps {
		i := i // pre-1.22 loop semantics: capture per iteration, not shared
		p.subscribe(func(v T, err error) {
			if err == nil {
				next.resolve(v)
				return
			}
			mu.Lock()
			reasons[i] = err
			waiting--
			last := waiting == 0
			mu.Unlock()
			if last {
				next.reject(errors.Join(reasons...))
			}
		})
	}
	return next
}
