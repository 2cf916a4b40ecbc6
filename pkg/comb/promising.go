package comb

import (
	"github.com/mk-56/comb/pkg/comb/promise"
)

// Promising bridges a synchronous, possibly panicking function into the
// deferred-result world: the returned function never panics, it produces a
// promise that fulfills with f's result or rejects with whatever f raised.
func Promising[T, U any](f func(T) U) func(T) *promise.Promise[U] {
	return func(param T) *promise.Promise[U] {
		return promise.New(func(resolve func(U), _ func(error)) {
			resolve(f(param))
		})
	}
}

// PromisingErr bridges an error-returning function: a non-nil error rejects
// the promise, otherwise it fulfills with the returned value.
func PromisingErr[T, U any](f func(T) (U, error)) func(T) *promise.Promise[U] {
	return func(param T) *promise.Promise[U] {
		return promise.New(func(resolve func(U), reject func(error)) {
			out, err := f(param)
			if err != nil {
				reject(err)
				return
			}
			resolve(out)
		})
	}
}
