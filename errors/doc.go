// Package errors provides structured error types for the routewise library.
//
// Errors are categorized by Phase (where in the transition the error arose)
// and Kind (error category). Every failed navigation reports exactly one
// Error to its abort callback; only "real" failures (guard errors and
// component resolution errors) are also forwarded to registered error
// listeners. Duplicated, aborted, cancelled and redirected navigations are
// expected outcomes and stay silent.
//
// Use the convenience constructors:
//
//	err := errors.Cancelled("/a", "/b")
//	err := errors.GuardFailure("/a", "/b", cause)
//
// and the classifiers to branch on the outcome:
//
//	if errors.IsDuplicated(err) {
//	    // navigation was a no-op
//	}
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
