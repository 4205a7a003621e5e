package check

import (
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/zakharsmirnoff/always-check/results"
)

// Logger receives a Debug record for every failed call and a Trace record with the stack of every recovered
// panic.  It discards everything until a caller replaces it.
var Logger = zerolog.Nop()

// Sync calls f and returns its value, or an *Error if f returned an error or panicked.
func Sync[T any](f func() (T, error)) results.Result[T] {
	if f == nil {
		return fail[T](f, ErrNilFunc)
	}
	return call(f, f)
}

// Sync1 calls f(a) the same way Sync does.
func Sync1[A, T any](f func(A) (T, error), a A) results.Result[T] {
	if f == nil {
		return fail[T](f, ErrNilFunc)
	}
	return call(f, func() (T, error) { return f(a) })
}

// Sync2 calls f(a, b) the same way Sync does.
func Sync2[A, B, T any](f func(A, B) (T, error), a A, b B) results.Result[T] {
	if f == nil {
		return fail[T](f, ErrNilFunc)
	}
	return call(f, func() (T, error) { return f(a, b) })
}

// Sync3 calls f(a, b, c) the same way Sync does.
func Sync3[A, B, C, T any](f func(A, B, C) (T, error), a A, b B, c C) results.Result[T] {
	if f == nil {
		return fail[T](f, ErrNilFunc)
	}
	return call(f, func() (T, error) { return f(a, b, c) })
}

// call runs do on the caller's goroutine.  target is only used to name the function in the error.
func call[T any](target any, do func() (T, error)) (res results.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = results.Failure[T](report(fromPanic(target, r, debug.Stack())))
		}
	}()

	v, err := do()
	if err != nil {
		return fail[T](target, err)
	}
	return results.Success(v)
}

func fail[T any](target any, err error) results.Result[T] {
	return results.Failure[T](report(fromError(target, err)))
}

func report(e *Error) *Error {
	Logger.Debug().
		Str("func", e.Func).
		Str("kind", lo.Ternary(e.Panicked(), "panic", "error")).
		Err(e.Cause).
		Msg("call failed")

	if e.Panicked() {
		Logger.Trace().Str("func", e.Func).Str("stack", e.Stack).Msg("recovered panic")
	}
	return e
}
