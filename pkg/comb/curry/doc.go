// Package curry turns fixed-arity functions into chains of unary functions
// and back.
//
// Two styles are provided:
// - Curry2..Curry5 / Uncurry2..Uncurry5: typed arity families for functions
//   whose shape is known at compile time
// - To: a dynamic form over variadic any-functions with an explicit arity,
//   for call sites that accumulate arguments across several calls
//
// The dynamic form models partial application as an immutable record of the
// target, its declared arity and the arguments supplied so far; every call
// either fires the target or yields a new record.
package curry
