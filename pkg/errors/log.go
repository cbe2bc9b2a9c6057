package errors

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes structured log events.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool

	log zerolog.Logger
}

// NewLogHandler creates a LogHandler writing to stderr.
func NewLogHandler() *LogHandler {
	return NewLogHandlerTo(os.Stderr)
}

// NewLogHandlerTo creates a LogHandler writing to the given writer.
func NewLogHandlerTo(w io.Writer) *LogHandler {
	return &LogHandler{
		log: zerolog.New(w).With().Timestamp().Str("component", "chartkit").Logger(),
	}
}

// HandleError logs a ChartError.
func (h *LogHandler) HandleError(err *ChartError) {
	if err == nil {
		return
	}
	evt := h.log.Error().
		Str("op", err.Op).
		Str("kind", err.Kind.String()).
		Err(err.Err)
	if err.Host != "" {
		evt = evt.Str("host", err.Host)
	}
	if h.Verbose && err.StackTrace != "" {
		evt = evt.Str("stack", err.StackTrace)
	}
	evt.Msg("chart error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	evt := h.log.Error().
		Str("op", err.Op).
		Interface("value", err.Value)
	if h.Verbose && err.StackTrace != "" {
		evt = evt.Str("stack", err.StackTrace)
	}
	evt.Msg("recovered panic")
}
