package results

// Result holds the outcome of a single call: the value it produced, or the error it failed with.
type Result[R any] struct {
	Val R
	Err error
}

func New[R any](val R, err error) Result[R] {
	if err != nil {
		return Failure[R](err)
	}
	return Success(val)
}

func Success[T any](val T) Result[T] {
	return Result[T]{Val: val}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

func (r Result[R]) IsSuccess() bool {
	return r.Err == nil
}

func (r Result[R]) IsFailure() bool {
	return r.Err != nil
}

// Get unpacks the result into the usual Go value and error pair.
func (r Result[R]) Get() (R, error) {
	return r.Val, r.Err
}
