// Package comb contains the core function combinators: composition, side
// effect injection, branching and guarded execution over plain unary
// functions. Every combinator is a pure, synchronous transformation on the
// caller's goroutine; Promising is the only bridge out of that world.
//
// Highlights:
// - Compose/Pipe: chain unary steps right-to-left or left-to-right
// - ComposeErr/Pipe2Err: fail-fast chaining over (value, error) stages
// - Identify/Tap: run a side effect, pass the input through untouched
// - Alt: apply every candidate, keep the first present Option
// - Seq/SeqErr: run side-effecting steps in order against one input
// - Fork: feed one input to many branches, join the collected results
// - Safe/SafeErr: route a panic or error to an alternate handler
// - Promising/PromisingErr: lift a synchronous call into a Promise
package comb
