package flow

import (
	"github.com/mk-56/comb/pkg/comb"
	"github.com/mk-56/comb/pkg/comb/promise"
)

type Flow[T any] struct {
	val T
}

func Of[T any](v T) Flow[T] {
	return Flow[T]{val: v}
}

func (f Flow[T]) Value() T {
	return f.val
}

// Then pipes the value through the given steps left-to-right.
func (f Flow[T]) Then(steps ...func(T) T) Flow[T] {
	return Flow[T]{val: comb.Pipe(steps...)(f.val)}
}

// Tap hands the current value to a side effect and carries it on unchanged.
func (f Flow[T]) Tap(effect func(T)) Flow[T] {
	return Flow[T]{val: comb.Tap(effect)(f.val)}
}

// Also runs several side effects in order against the current value.
func (f Flow[T]) Also(effects ...func(T)) Flow[T] {
	comb.Seq(effects...)(f.val)
	return f
}

// Safe applies step under a panic guard; a raised value is routed to alt
// and alt's result becomes the new value.
func (f Flow[T]) Safe(alt func(recovered any) T, step func(T) T) Flow[T] {
	return Flow[T]{val: comb.Safe(alt, step)(f.val)}
}

// Or offers the value to every candidate and adopts the first present
// result, keeping the current value when none matches.
func (f Flow[T]) Or(candidates ...func(T) comb.Option[T]) Flow[T] {
	return Flow[T]{val: comb.Alt(candidates...)(f.val).OrElse(f.val)}
}

// Map transforms the flow to a new value type. Methods cannot introduce
// type parameters, so cross-type steps live at package level.
func Map[T, U any](f Flow[T], step func(T) U) Flow[U] {
	return Flow[U]{val: step(f.val)}
}

// Finish collapses the flow to a concrete value.
func Finish[T, U any](f Flow[T], reduce func(T) U) U {
	return reduce(f.val)
}

// Async lifts the current value into an already fulfilled promise.
func Async[T any](f Flow[T]) *promise.Promise[T] {
	return promise.Resolved(f.val)
}

// Launch applies step to the current value inside a guarded region and
// returns the deferred result: a raised value rejects instead of panicking.
func Launch[T, U any](f Flow[T], step func(T) U) *promise.Promise[U] {
	return comb.Promising(step)(f.val)
}
