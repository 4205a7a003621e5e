package check

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"

	pkgerrors "github.com/pkg/errors"

	"github.com/zakharsmirnoff/always-check/futures"
)

const messagePrefix = "Error: "

var (
	// ErrNilFunc is the cause reported when a nil function is passed to Sync or Async
	ErrNilFunc = errors.New("nil function")

	// ErrNilFuture is the cause reported when an async function returns a nil future
	ErrNilFuture = errors.New("function returned a nil future")
)

// Error is the single error kind produced for every failed call, whatever the failure was.
type Error struct {
	msg string

	// Cause is the original failure.  A panic with a non-error value is turned into an error carrying the
	// value's text.
	Cause error
	// Func is the fully-qualified name of the function that was called.  It is empty when the name
	// cannot be resolved, e.g. for a nil function.
	Func string
	// Recovered is the raw value passed to panic, or nil when the call did not panic.  It is also set when
	// the future returned by an async function was failed by a panic inside futures.FromFunc.
	Recovered any
	// Stack is the stack of the panicking goroutine.
	Stack string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Panicked reports whether the failure was a recovered panic.
func (e *Error) Panicked() bool {
	return e.Recovered != nil
}

// AsError finds the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func fromError(fn any, err error) *Error {
	e := &Error{
		msg:   messagePrefix + err.Error(),
		Cause: err,
		Func:  funcName(fn),
	}

	// a rejection produced by a panic inside futures.FromFunc
	var pe *futures.PanicError
	if errors.As(err, &pe) {
		e.Recovered = pe.Value
		e.Stack = string(pe.Stack)
	}
	return e
}

func fromPanic(fn any, r any, stack []byte) *Error {
	cause, ok := r.(error)
	if !ok {
		cause = pkgerrors.New(fmt.Sprint(r))
	}
	return &Error{
		msg:       messagePrefix + cause.Error(),
		Cause:     cause,
		Func:      funcName(fn),
		Recovered: r,
		Stack:     string(stack),
	}
}

func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return ""
}
