// Package promise implements a settle-once deferred result observed through
// registered continuations.
//
// Key operations:
// - New/Resolved/Rejected/Go: construct promises
// - Then/Catch (and their curried forms ThenC/CatchC): derive promises
// - Tee: outcome side effects that leave the result untouched
// - All/Race/Any: combine several promises into one
// - Await/Done: block on or select over settlement
//
// A promise settles at most once; later settlement attempts are no-ops.
// Continuations never run inline on the goroutine that settles or registers
// them, continuations of one promise run strictly in registration order, and
// every continuation observes the same settled outcome. There is no
// cancellation: Await may abandon its wait through a context, but the
// promise itself always runs to settlement.
package promise
