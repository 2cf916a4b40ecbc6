package curry

// Curried is the dynamic shape shared by every stage of a To chain: any
// number of arguments in, one value out. A stage still waiting for arguments
// returns the next stage as its value, so callers continue with a
// `.(Curried)` assertion; the firing stage returns the target's result.
type Curried func(args ...any) any

// To wraps target so that calls accumulate arguments until arity of them
// have been supplied, then invokes target with all accumulated arguments in
// the order given. An over-supplying call forwards every extra argument to
// the target as well. With arity 0, or a first call that already supplies
// enough, the target fires immediately.
func To(arity int, target Curried) Curried {
	return partial(arity, target, nil)
}

// partial closes over one accumulation step. The supplied slice is never
// shared with sibling stages: each call copies, so a stage can be applied
// any number of times independently.
func partial(arity int, target Curried, supplied []any) Curried {
	return func(args ...any) any {
		merged := make([]any, 0, len(supplied)+len(args))
		merged = append(merged, supplied...)
		merged = append(merged, args...)

		if len(merged) >= arity {
			return target(merged...)
		}
		return partial(arity, target, merged)
	}
}
