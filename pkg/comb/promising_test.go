package comb

import (
	"context"
	"errors"
	"testing"

	"github.com/mk-56/comb/pkg/comb/promise"
)

func TestPromising_FulfillsWithResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	double := func(n int) int { return n * 2 }

	v, err := Promising(double)(21).Await(ctx)
	if err != nil || v != 42 {
		t.Fatalf("expected fulfilled with 42, got: val=%v, err=%v", v, err)
	}
}

func TestPromising_RejectsWithRaisedValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")
	throwing := func(int) int { panic(boom) }

	p := Promising(throwing)(1)

	_, err := p.Await(ctx)
	if !errors.Is(err, boom) {
		t.Fatalf("expected rejection with the raised value, got: %v", err)
	}
	if !p.IsRejected() {
		t.Fatalf("expected rejected state")
	}
}

func TestPromising_NeverRaisesSynchronously(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	throwing := func(int) string { panic("raw payload") }

	// Creating the promise must not panic even though the wrapped call does.
	p := Promising(throwing)(1)

	_, err := p.Await(ctx)
	var pe promise.PanicError
	if !errors.As(err, &pe) || pe.Value != "raw payload" {
		t.Fatalf("expected the payload wrapped in PanicError, got: %v", err)
	}
}

func TestPromisingErr_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	parse := func(ok bool) (int, error) {
		if !ok {
			return 0, boom
		}
		return 7, nil
	}

	v, err := PromisingErr(parse)(true).Await(ctx)
	if err != nil || v != 7 {
		t.Fatalf("expected fulfilled with 7, got: val=%v, err=%v", v, err)
	}

	_, err = PromisingErr(parse)(false).Await(ctx)
	if !errors.Is(err, boom) {
		t.Fatalf("expected rejection 'boom', got: %v", err)
	}
}

func TestPromising_ComposesWithContinuations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	length := Promising(func(s string) int { return len(s) })
	doubled := promise.Then(length("gopher"), func(n int) int { return n * 2 })

	v, err := doubled.Await(ctx)
	if err != nil || v != 12 {
		t.Fatalf("expected fulfilled with 12, got: val=%v, err=%v", v, err)
	}
}
