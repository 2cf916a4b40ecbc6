package promise

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ready is the dispatch tail of a promise with nothing queued behind it.
var ready = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Promise is a deferred result: it settles exactly once, either fulfilled
// with a value or rejected with an error, and continuations registered on it
// observe that single outcome. The zero value is not usable; construct with
// New, Resolved, Rejected or Go.
type Promise[T any] struct {
	id        uuid.UUID
	createdAt time.Time

	mu      sync.Mutex
	settled bool
	value   T
	err     error
	subs    []func(T, error)
	// tail closes when the most recently queued continuation has finished,
	// so later registrations can keep dispatch in registration order.
	tail chan struct{}
	done chan struct{}
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		tail:      ready,
		done:      make(chan struct{}),
	}
}

// New runs executor on the calling goroutine, handing it the resolve and
// reject halves of a fresh promise. The first call to either settles the
// promise. A panic inside executor rejects it instead of propagating.
func New[T any](executor func(resolve func(T), reject func(error))) (p *Promise[T]) {
	p = newPromise[T]()
	defer func() {
		if r := recover(); r != nil {
			p.reject(asError(r))
		}
	}()
	executor(p.resolve, p.reject)
	return p
}

// Resolved returns a promise already fulfilled with v.
func Resolved[T any](v T) *Promise[T] {
	p := newPromise[T]()
	p.resolve(v)
	return p
}

// Rejected returns a promise already rejected with err.
func Rejected[T any](err error) *Promise[T] {
	p := newPromise[T]()
	p.reject(err)
	return p
}

// Go runs f on its own goroutine and settles the returned promise with f's
// outcome. A panic inside f rejects.
func Go[T any](f func() (T, error)) *Promise[T] {
	p := newPromise[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.reject(asError(r))
			}
		}()
		v, err := f()
		if err != nil {
			p.reject(err)
			return
		}
		p.resolve(v)
	}()
	return p
}

func (p *Promise[T]) resolve(v T) {
	p.settle(v, nil)
}

func (p *Promise[T]) reject(err error) {
	if err == nil {
		err = errNilReason
	}
	var zero T
	p.settle(zero, err)
}

// settle records the outcome once; later calls are no-ops. Queued
// continuations run on a fresh goroutine, in registration order, never on
// the settling goroutine.
func (p *Promise[T]) settle(v T, err error) {
	p.mu.Lock()
	if p.settled {
		p.mu.Unlock()
		return
	}
	p.settled = true
	p.value, p.err = v, err
	subs := p.subs
	p.subs = nil
	var next chan struct{}
	var prev chan struct{}
	if len(subs) > 0 {
		prev = p.tail
		next = make(chan struct{})
		p.tail = next
	}
	close(p.done)
	p.mu.Unlock()

	if len(subs) == 0 {
		return
	}
	go func() {
		<-prev
		for _, sub := range subs {
			sub(v, err)
		}
		close(next)
	}()
}

// subscribe queues sub to observe the settled outcome. Registrations made
// before settlement run when it happens; registrations made after settlement
// are appended behind whatever is already dispatching, which keeps one
// promise's continuations in registration order overall.
func (p *Promise[T]) subscribe(sub func(T, error)) {
	p.mu.Lock()
	if !p.settled {
		p.subs = append(p.subs, sub)
		p.mu.Unlock()
		return
	}
	v, err := p.value, p.err
	prev := p.tail
	next := make(chan struct{})
	p.tail = next
	p.mu.Unlock()

	go func() {
		<-prev
		sub(v, err)
		close(next)
	}()
}

// Await blocks until the promise settles or ctx ends, whichever comes first.
// A context error abandons the wait only; the promise keeps running and can
// be awaited again.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the promise has settled.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// IsSettled reports whether the promise has an outcome yet.
func (p *Promise[T]) IsSettled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// IsFulfilled reports a successful settlement. False while pending.
func (p *Promise[T]) IsFulfilled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settled && p.err == nil
}

// IsRejected reports a failed settlement. False while pending.
func (p *Promise[T]) IsRejected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settled && p.err != nil
}

// ID identifies this promise, e.g. when tracing values across a pipeline.
func (p *Promise[T]) ID() uuid.UUID {
	return p.id
}

// CreatedAt reports when the promise was created (UTC).
func (p *Promise[T]) CreatedAt() time.Time {
	return p.createdAt
}

// Completion is the observation side of a promise, for callers that only
// wait on outcomes and never settle them.
type Completion[T any] interface {
	// Await blocks until settlement or the end of ctx
	Await(ctx context.Context) (T, error)
	// Done is closed once the outcome is in
	Done() <-chan struct{}
	// IsSettled reports whether an outcome is in yet
	IsSettled() bool
}
