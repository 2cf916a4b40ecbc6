package promise

import (
	"context"
	"errors"
	"fmt"
)

// errNilReason stands in when a promise is rejected with a nil error, so a
// settled promise is fulfilled exactly when its error is nil.
var errNilReason = errors.New("promise: rejected with nil reason")

// PanicError carries a non-error panic payload across a rejection boundary.
// Error payloads are never wrapped; they reject as themselves.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("promise: panic: %v", e.Value)
}

// asError converts a recovered panic payload into a rejection reason.
func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return PanicError{Value: v}
}

// Errors unpacks err into its component errors: a joined rejection, as
// produced by Any, yields every reason; a plain error yields itself; nil
// yields none.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return u.Unwrap()
	}
	return []error{err}
}

// IsCancellation reports whether err stems from context cancellation or an
// expired deadline, the errors Await returns when its context ends before
// settlement.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
