package comb

// Identify injects a side effect that needs no access to the value flowing
// through: f runs with no arguments, its result is discarded, and the input
// passes through untouched.
func Identify[T any](f func()) func(T) T {
	return func(input T) T {
		f()
		return input
	}
}

// Tap is like Identify but hands the pipeline value to the side effect.
func Tap[T any](f func(T)) func(T) T {
	return func(input T) T {
		f(input)
		return input
	}
}

// Alt applies every candidate to the same input and keeps the first present
// result in call order. All candidates run regardless of earlier hits, so
// they should be free of side effects unless effects from non-selected
// branches are acceptable.
func Alt[T, U any](fns ...func(T) Option[U]) func(T) Option[U] {
	return func(input T) Option[U] {
		picked := None[U]()
		for _, f := range fns {
			if out := f(input); out.IsSome() && picked.IsNone() {
				picked = out
			}
		}
		return picked
	}
}

// Seq runs every function strictly in order against the same input, for side
// effects only. A panic aborts the remaining functions.
func Seq[T any](fns ...func(T)) func(T) {
	return func(input T) {
		for _, f := range fns {
			f(input)
		}
	}
}

// SeqErr is the error-returning dual of Seq: the first non-nil error aborts
// the remaining functions and is returned.
func SeqErr[T any](fns ...func(T) error) func(T) error {
	return func(input T) error {
		for _, f := range fns {
			if err := f(input); err != nil {
				return err
			}
		}
		return nil
	}
}

// Fork feeds one input to every branch, collects the results in call order
// and spreads them into join.
func Fork[T, U, R any](join func(...U) R, fns ...func(T) U) func(T) R {
	return func(input T) R {
		results := make([]U, 0, len(fns))
		for _, f := range fns {
			results = append(results, f(input))
		}
		return join(results...)
	}
}

func Fork2[T, A, B, R any](join func(A, B) R, f func(T) A, g func(T) B) func(T) R {
	return func(input T) R {
		return join(f(input), g(input))
	}
}

func Fork3[T, A, B, C, R any](join func(A, B, C) R, f func(T) A, g func(T) B, h func(T) C) func(T) R {
	return func(input T) R {
		return join(f(input), g(input), h(input))
	}
}

// Safe runs f inside a guarded region. On success its result is returned.
// On a panic the recovered value is routed to alt and alt's result is
// returned instead. A panic from alt itself propagates unguarded.
func Safe[T, U any](alt func(recovered any) U, f func(T) U) func(T) U {
	return func(input T) (out U) {
		defer func() {
			if r := recover(); r != nil {
				out = alt(r)
			}
		}()
		return f(input)
	}
}

// SafeErr is the error-union rendition of Safe: a non-nil error from f is
// routed to alt.
func SafeErr[T, U any](alt func(err error) U, f func(T) (U, error)) func(T) U {
	return func(input T) U {
		out, err := f(input)
		if err != nil {
			return alt(err)
		}
		return out
	}
}
