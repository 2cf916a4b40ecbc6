package promise

import (
	"github.com/mk-56/comb/pkg/comb/curry"
)

// Then derives a promise carrying f applied to p's eventual value. A
// rejection passes through untouched, and a panic inside f rejects the
// derived promise.
func Then[T, U any](p *Promise[T], f func(T) U) *Promise[U] {
	next := newPromise[U]()
	p.subscribe(func(v T, err error) {
		if err != nil {
			next.reject(err)
			return
		}
		defer func() {
			if r := recover(); r != nil {
				next.reject(asError(r))
			}
		}()
		next.resolve(f(v))
	})
	return next
}

// Catch derives a promise that recovers p's rejection through f, fulfilling
// with f's result. A fulfilled p passes its value through untouched, and a
// panic inside f rejects the derived promise.
func Catch[T any](p *Promise[T], f func(error) T) *Promise[T] {
	next := newPromise[T]()
	p.subscribe(func(v T, err error) {
		if err == nil {
			next.resolve(v)
			return
		}
		defer func() {
			if r := recover(); r != nil {
				next.reject(asError(r))
			}
		}()
		next.resolve(f(err))
	})
	return next
}

// ThenC is Then with its arguments curried, continuation first: ThenC(f)
// specializes a fulfillment continuation that is waiting for its promise,
// and ThenC(f)(p) behaves exactly like Then(p, f).
func ThenC[T, U any](f func(T) U) func(*Promise[T]) *Promise[U] {
	return curry.Curry2(func(g func(T) U, p *Promise[T]) *Promise[U] {
		return Then(p, g)
	})(f)
}

// CatchC is Catch with its arguments curried, continuation first.
func CatchC[T any](f func(error) T) func(*Promise[T]) *Promise[T] {
	return curry.Curry2(func(g func(error) T, p *Promise[T]) *Promise[T] {
		return Catch(p, g)
	})(f)
}

// Tee registers outcome side effects and passes the outcome through to the
// derived promise unchanged. Either callback may be nil. A panic inside a
// callback rejects the derived promise.
func Tee[T any](p *Promise[T], onFulfilled func(T), onRejected func(error)) *Promise[T] {
	next := newPromise[T]()
	p.subscribe(func(v T, err error) {
		defer func() {
			if r := recover(); r != nil {
				next.reject(asError(r))
			}
		}()
		if err != nil {
			if onRejected != nil {
				onRejected(err)
			}
			next.reject(err)
			return
		}
		if onFulfilled != nil {
			onFulfilled(v)
		}
		next.resolve(v)
	})
	return next
}
