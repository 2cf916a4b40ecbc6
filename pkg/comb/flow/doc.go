// Package flow provides a minimal fluent Flow[T] for eager, synchronous
// chaining of unary steps over one value.
//
// It parallels the comb package but reads left-to-right as a chain:
// - Of/Value: wrap and unwrap a value
// - Then: pipe the value through steps in order
// - Tap/Also: side effects without changing the value
// - Safe: apply a step under a panic guard
// - Or: adopt the first present alternative
// - Map/Finish: cross-type transforms at package level
// - Async/Launch: bridge into the promise package
//
// Flow is ideal for small pipelines or tests where fluent chaining reads
// better than nested composition.
package flow
