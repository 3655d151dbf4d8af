package higraerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure into one of the taxonomy buckets from the
// library's error-handling contract.
type Kind int

const (
	// InvalidArgument marks shape mismatches, non-1-D data where 1-D is
	// required, non-topological parent arrays, negative ids, and similar
	// caller mistakes detected before any work is performed.
	InvalidArgument Kind = iota
	// OutOfRange marks a vertex/edge id outside [0,n) / [0,m), or an
	// unrecognized mode string.
	OutOfRange
	// Unsupported marks an operation the receiver does not implement,
	// such as AddEdge on a regular-grid graph.
	Unsupported
	// NonTerminating marks a documented caller obligation that was not
	// met (e.g. CSA matching invoked without a feasible perfect
	// matching); it is not checked ahead of time.
	NonTerminating
)

// String renders the Kind the way it appears in error messages.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case OutOfRange:
		return "out of range"
	case Unsupported:
		return "unsupported"
	case NonTerminating:
		return "non-terminating"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by every package in this
// module. Op names the failing function ("tree.New", "graph.AddEdge");
// Msg is a human-readable detail; Cause, if non-nil, is wrapped and
// reachable via errors.Unwrap/errors.As.
type Error struct {
	Kind  Kind
	Op    string
	Msg   string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Msg, e.Cause)
	}

	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Unwrap exposes Cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Kind, so
// errors.Is(err, higraerr.New(kind, "", "")) matches any error of that
// kind; KindOf below extracts the Kind directly.
func (e *Error) Is(target error) bool {
	var te *Error
	if errors.As(target, &te) {
		return te.Kind == e.Kind
	}

	return false
}

// New builds an *Error with no wrapped cause.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Wrap builds an *Error around an existing error, preserving it for
// errors.Unwrap while attaching a Kind and operation name.
func Wrap(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Msg: cause.Error(), Cause: cause}
}

// KindOf extracts the Kind of err if it is (or wraps) an *Error,
// reporting ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}
