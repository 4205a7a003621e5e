package check

import (
	"context"

	"github.com/zakharsmirnoff/always-check/futures"
	"github.com/zakharsmirnoff/always-check/results"
)

// Async calls f and returns a future that completes with the value f's future resolves to, or with an *Error
// if f panics, returns a nil future, or its future is rejected.  The returned future is never failed.
//
// f itself runs on the caller's goroutine; only the wait for its future happens in the background.  There is
// no way to cancel that wait: if f's future never settles neither does the returned one.
func Async[T any](f func() *futures.Future[T]) *futures.Future[results.Result[T]] {
	if f == nil {
		return futures.Completed(fail[T](f, ErrNilFunc))
	}
	return await(f, f)
}

// Async1 calls f(a) the same way Async does.
func Async1[A, T any](f func(A) *futures.Future[T], a A) *futures.Future[results.Result[T]] {
	if f == nil {
		return futures.Completed(fail[T](f, ErrNilFunc))
	}
	return await(f, func() *futures.Future[T] { return f(a) })
}

// Async2 calls f(a, b) the same way Async does.
func Async2[A, B, T any](f func(A, B) *futures.Future[T], a A, b B) *futures.Future[results.Result[T]] {
	if f == nil {
		return futures.Completed(fail[T](f, ErrNilFunc))
	}
	return await(f, func() *futures.Future[T] { return f(a, b) })
}

// Async3 calls f(a, b, c) the same way Async does.
func Async3[A, B, C, T any](f func(A, B, C) *futures.Future[T], a A, b B, c C) *futures.Future[results.Result[T]] {
	if f == nil {
		return futures.Completed(fail[T](f, ErrNilFunc))
	}
	return await(f, func() *futures.Future[T] { return f(a, b, c) })
}

func await[T any](target any, start func() *futures.Future[T]) *futures.Future[results.Result[T]] {
	started := call(target, func() (*futures.Future[T], error) {
		fut := start()
		if fut == nil {
			return nil, ErrNilFuture
		}
		return fut, nil
	})
	if started.IsFailure() {
		return futures.Completed(results.Failure[T](started.Err))
	}

	out := futures.New[results.Result[T]]()
	go func() {
		v, err := started.Val.Get(context.Background())
		if err != nil {
			err = report(fromError(target, err))
		}
		out.Complete(results.New(v, err))
	}()

	return out
}
