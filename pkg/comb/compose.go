package comb

// Compose applies the given functions right-to-left: the rightmost one
// receives the original input. With no functions it is the identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(input T) T {
		out := input
		for i := len(fns) - 1; i >= 0; i-- {
			out = fns[i](out)
		}
		return out
	}
}

// Compose2 composes across types: Compose2(f, g)(x) is f(g(x)).
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(input A) C {
		return f(g(input))
	}
}

func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(input A) D {
		return f(g(h(input)))
	}
}

// Pipe is the left-to-right dual of Compose: the first function receives
// the original input.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(input T) T {
		out := input
		for _, f := range fns {
			out = f(out)
		}
		return out
	}
}

func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(input A) C {
		return g(f(input))
	}
}

func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(input A) D {
		return h(g(f(input)))
	}
}

// ComposeErr composes error-returning stages right-to-left, stopping at the
// first non-nil error.
func ComposeErr[T any](fns ...func(T) (T, error)) func(T) (T, error) {
	return func(input T) (T, error) {
		out := input
		for i := len(fns) - 1; i >= 0; i-- {
			next, err := fns[i](out)
			if err != nil {
				var zero T
				return zero, err
			}
			out = next
		}
		return out, nil
	}
}

func Compose2Err[A, B, C any](f func(B) (C, error), g func(A) (B, error)) func(A) (C, error) {
	return func(input A) (C, error) {
		mid, err := g(input)
		if err != nil {
			var zero C
			return zero, err
		}
		return f(mid)
	}
}

func Pipe2Err[A, B, C any](f func(A) (B, error), g func(B) (C, error)) func(A) (C, error) {
	return func(input A) (C, error) {
		mid, err := f(input)
		if err != nil {
			var zero C
			return zero, err
		}
		return g(mid)
	}
}
