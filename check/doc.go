// Package check calls a function and hands back its outcome as a results.Result instead of letting a
// failure escape.  A failure is either a non-nil error returned by the function or a panic raised while it
// runs; both are converted to an *Error whose message is "Error: " followed by the failure's text.
//
// Sync and its arity variants call a function that returns (T, error).  Async and its arity variants call a
// function that returns a *futures.Future[T] and return a future that always completes with a Result, so a
// rejected future is observed as a value and never as an error from Get.
//
//	r := check.Sync2(divide, 10, 0)
//	if r.IsFailure() {
//		// r.Err is a *check.Error
//	}
package check
