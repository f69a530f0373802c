package errors

import (
	stderrors "errors"
	"strconv"
	"strings"
)

// Phase indicates where in the transition the error occurred
type Phase string

const (
	PhaseMatch   Phase = "match"   // location resolution
	PhaseGuard   Phase = "guard"   // guard pipeline execution
	PhaseResolve Phase = "resolve" // lazy component resolution
	PhaseCommit  Phase = "commit"  // route commit and listener dispatch
)

// Kind categorizes the error
type Kind string

const (
	// KindDuplicated marks a navigation to the already-committed route.
	// A no-op, not a failure.
	KindDuplicated Kind = "duplicated"
	// KindAborted marks a navigation a guard explicitly blocked.
	KindAborted Kind = "aborted"
	// KindCancelled marks a navigation superseded by a newer one mid-flight.
	KindCancelled Kind = "cancelled"
	// KindRedirected marks a navigation a guard rerouted. The replacement
	// navigation has already been started when this error is delivered.
	KindRedirected Kind = "redirected"
	// KindGuardFailure marks a guard that threw or resolved with an error.
	KindGuardFailure Kind = "guard_failure"
	// KindResolveFailure marks a lazy component definition that failed to load.
	KindResolveFailure Kind = "resolve_failure"
)

// Error is the structured error type used throughout the library
type Error struct {
	Phase  Phase
	Kind   Kind
	From   string // full path of the route the navigation started on
	To     string // full path of the navigation target
	Target string // redirect destination, KindRedirected only
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.From != "" || e.To != "" {
		b.WriteString(": navigating from ")
		b.WriteString(strconv.Quote(e.From))
		b.WriteString(" to ")
		b.WriteString(strconv.Quote(e.To))
	}

	if e.Target != "" {
		b.WriteString(" via ")
		b.WriteString(strconv.Quote(e.Target))
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the navigation failure taxonomy

// Duplicated creates the silent no-op error for a navigation whose target
// equals the committed route
func Duplicated(from, to string) *Error {
	return &Error{
		Phase: PhaseMatch,
		Kind:  KindDuplicated,
		From:  from,
		To:    to,
	}
}

// Aborted creates the silent error for a navigation a guard blocked
func Aborted(from, to string) *Error {
	return &Error{
		Phase: PhaseGuard,
		Kind:  KindAborted,
		From:  from,
		To:    to,
	}
}

// Cancelled creates the silent error for a navigation superseded mid-flight
func Cancelled(from, to string) *Error {
	return &Error{
		Phase: PhaseGuard,
		Kind:  KindCancelled,
		From:  from,
		To:    to,
	}
}

// Redirected creates the silent error for a navigation a guard rerouted
func Redirected(from, to, target string) *Error {
	return &Error{
		Phase:  PhaseGuard,
		Kind:   KindRedirected,
		From:   from,
		To:     to,
		Target: target,
	}
}

// GuardFailure wraps an error a guard produced, synchronously or through
// its completion handle
func GuardFailure(from, to string, cause error) *Error {
	return &Error{
		Phase: PhaseGuard,
		Kind:  KindGuardFailure,
		From:  from,
		To:    to,
		Cause: cause,
	}
}

// ResolveFailure wraps a lazy component loading error
func ResolveFailure(from, to string, cause error) *Error {
	return &Error{
		Phase: PhaseResolve,
		Kind:  KindResolveFailure,
		From:  from,
		To:    to,
		Cause: cause,
	}
}

// Classification helpers

// IsNavigationFailure reports whether err is any structured navigation error
func IsNavigationFailure(err error) bool {
	var e *Error
	return stderrors.As(err, &e)
}

func isKind(err error, kind Kind) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// IsDuplicated reports whether err marks a no-op navigation
func IsDuplicated(err error) bool { return isKind(err, KindDuplicated) }

// IsAborted reports whether err marks a navigation a guard blocked
func IsAborted(err error) bool { return isKind(err, KindAborted) }

// IsCancelled reports whether err marks a superseded navigation
func IsCancelled(err error) bool { return isKind(err, KindCancelled) }

// IsRedirected reports whether err marks a rerouted navigation
func IsRedirected(err error) bool { return isKind(err, KindRedirected) }

// IsSilent reports whether err is an expected navigation outcome that must
// not reach error listeners: duplicated, aborted, cancelled or redirected.
// Everything else, including guard and resolve failures, is a real error.
func IsSilent(err error) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case KindDuplicated, KindAborted, KindCancelled, KindRedirected:
		return true
	}
	return false
}
