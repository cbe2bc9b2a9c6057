// Package errors provides structured error handling for the chartkit core.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindHost indicates a host element resolution failure. Host errors
	// are fatal: bootstrap cannot proceed without a host element.
	KindHost
	// KindResolve indicates a component class name lookup failure.
	KindResolve
	// KindParse indicates a data parsing failure (config or geo data).
	KindParse
	// KindInit indicates an initialization error.
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindResolve:
		return "resolve"
	case KindParse:
		return "parse"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Fatal reports whether errors of this kind abort bootstrap. Only host
// resolution failures are fatal; everything else is captured as data and
// deferred to the constructed instance's own reporting channel.
func (k ErrorKind) Fatal() bool {
	return k == KindHost
}

// ChartError represents a structured error in the chartkit core.
type ChartError struct {
	// Op is the operation that failed (e.g., "surface.Bind").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Host is the host element identifier, if applicable.
	Host string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ChartError) Error() string {
	if e.Host != "" {
		return fmt.Sprintf("%s [%s] host=%s: %v", e.Op, e.Kind, e.Host, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

// New constructs a ChartError with the current timestamp.
func New(op string, kind ErrorKind, err error) *ChartError {
	return &ChartError{
		Op:        op,
		Kind:      kind,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// Newf constructs a ChartError from a format string.
func Newf(op string, kind ErrorKind, format string, args ...any) *ChartError {
	return New(op, kind, fmt.Errorf(format, args...))
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "chart.Create").
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

// ErrorHandler receives errors reported by the chartkit core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ChartError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
