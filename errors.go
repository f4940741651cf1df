package lui

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors. Use errors.Is to test for them; every *Error matches the
// sentinel of its Kind.
var (
	// ErrInvalidOperation reports structural misuse: cycles, double
	// elevation, reparenting without detaching, operations on disposed
	// widgets.
	ErrInvalidOperation = errors.New("lui: invalid operation")
	// ErrResourceExhausted reports that the backend could not provide a
	// native resource such as a window.
	ErrResourceExhausted = errors.New("lui: resource exhausted")
	// ErrStopped is returned by operations on a Main that has stopped.
	ErrStopped = errors.New("lui: main context stopped")
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidOperation indicates misuse of the widget tree or Main.
	KindInvalidOperation
	// KindResource indicates a backend resource failure.
	KindResource
	// KindStopped indicates use of a stopped Main.
	KindStopped
	// KindBackend indicates a non-fatal backend error (close, paint).
	KindBackend
	// KindCallback indicates a failure inside application code.
	KindCallback
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidOperation:
		return "invalid-operation"
	case KindResource:
		return "resource"
	case KindStopped:
		return "stopped"
	case KindBackend:
		return "backend"
	case KindCallback:
		return "callback"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidOperation:
		return ErrInvalidOperation
	case KindResource:
		return ErrResourceExhausted
	case KindStopped:
		return ErrStopped
	default:
		return nil
	}
}

// Error is a structured lui error.
type Error struct {
	// Op is the operation that failed (e.g. "lui.Main.Elevate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error was reported. Set by the handler path.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Kind. A stopped error also matches
// ErrInvalidOperation.
func (e *Error) Is(target error) bool {
	if s := e.Kind.sentinel(); s != nil && target == s {
		return true
	}
	return e.Kind == KindStopped && target == ErrInvalidOperation
}

// PanicError represents a panic recovered from application code.
type PanicError struct {
	// Op is the operation that panicked (e.g. "lui.Button.OnClick").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

func invalidOp(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindInvalidOperation, Err: fmt.Errorf(format, args...)}
}

// internalError panics on a broken invariant of the widget tree. These are
// bugs in lui, not misuse.
func internalError(format string, args ...any) {
	panic("lui: internal error: " + fmt.Sprintf(format, args...))
}
