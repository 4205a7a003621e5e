// Package futures provides a Future, a value that is not available yet and will eventually settle to either
// a result or an error.  A Future can be handed to several consumers and read by all of them, which is what sets it
// apart from a channel whose value can only be received once.
package futures

import (
	"context"
	"errors"
	"runtime/debug"
	"sync/atomic"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrCanceled is the error reported when a future is settled by calling Cancel
	ErrCanceled = errors.New("future canceled")

	// ErrPanicked is matched by the error of a future whose FutureFunc panicked
	ErrPanicked = errors.New("future function panicked")
)

// FutureFunc is the function signature required to create a Future via FromFunc
type FutureFunc[T any] func() (T, error)

// Future represents an asynchronous computation.
// A Future is created by New, FromFunc, Completed or Failed.  It settles exactly once: the first
// completion wins and every later one is silently ignored.
//
// Complete settles the future with a value, Fail settles it with an error and Cancel fails it with ErrCanceled.
//
// Get blocks until the future settles or until the context passed to it is done.  Giving up on Get does not
// stop the computation behind the future.  Get may be called from many goroutines and all of them observe the
// same outcome.
type Future[T any] struct {
	settled atomic.Bool
	done    chan struct{}

	value T
	err   error
}

// New creates an unsettled Future that must be settled manually with Complete, Fail or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// Completed returns a Future already settled with value.
func Completed[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// Failed returns a Future already settled with err.
func Failed[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// FromFunc runs do on a new goroutine and returns a Future that settles with its outcome.
// A panic inside do fails the Future with a *PanicError instead of crashing the process.
func FromFunc[T any](do FutureFunc[T]) *Future[T] {
	f := New[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.Fail(newPanicError(r, debug.Stack()))
			}
		}()

		t, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// PanicError is the error a Future created by FromFunc fails with when its FutureFunc panics.
// It matches ErrPanicked with errors.Is and unwraps to the panic value when that value is an error.
type PanicError struct {
	// Value is the raw value passed to panic.
	Value any
	// Stack is the stack of the panicking goroutine.
	Stack []byte

	cause error
}

func newPanicError(r any, stack []byte) *PanicError {
	cause, ok := r.(error)
	if !ok {
		cause = pkgerrors.Errorf("%v", r)
	}
	return &PanicError{Value: r, Stack: stack, cause: cause}
}

func (p *PanicError) Error() string { return p.cause.Error() }

func (p *PanicError) Is(target error) bool { return target == ErrPanicked }

func (p *PanicError) Unwrap() error { return p.cause }

// Complete settles this Future with the provided value.  If the future has already settled this call is ignored.
func (f *Future[T]) Complete(value T) {
	f.settle(value, nil)
}

// Cancel settles this Future with the ErrCanceled error.  If the future has already settled this call is ignored.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

// Fail settles this Future with the provided error.  If the future has already settled this call is ignored.
func (f *Future[T]) Fail(err error) {
	var zero T
	f.settle(zero, err)
}

func (f *Future[T]) settle(val T, err error) {
	if f.settled.CompareAndSwap(false, true) {
		f.value = val
		f.err = err
		close(f.done)
	}
}

// Done returns a channel that is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsDone reports whether the future has settled without blocking.
func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Get retrieves the outcome of this Future.  If the future has not settled yet this call blocks until it does
// or until ctx is done, in which case the context error is returned.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
