package lui

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// ErrorHandler receives errors and recovered panics that cannot be returned
// to a caller, such as failures inside click listeners or timers.
type ErrorHandler interface {
	// HandleError is called when a non-fatal error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// DefaultHandler receives reports from widgets that are not attached to a
// Main with its own handler. It defaults to a LogHandler on stderr.
var DefaultHandler ErrorHandler = &LogHandler{}

// SetHandler replaces DefaultHandler. Pass nil to restore the LogHandler.
// Call it during startup, before the loop runs.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	DefaultHandler = h
}

// LogHandler is an ErrorHandler that writes one line per report.
type LogHandler struct {
	// Out receives the output. Nil means os.Stderr.
	Out io.Writer
	// Verbose adds stack traces for panics.
	Verbose bool
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs err.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		_, _ = fmt.Fprintf(h.out(), "[lui error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		return
	}
	_, _ = fmt.Fprintf(h.out(), "[lui error] %s: %v\n", err.Op, err.Err)
}

// HandlePanic logs err and, when verbose, its stack trace.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		_, _ = fmt.Fprintf(w, "[lui panic] %s: %v\n", err.Op, err.Value)
	} else {
		_, _ = fmt.Fprintf(w, "[lui panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		_, _ = fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// reporter delivers reports to a handler, falling back to DefaultHandler.
type reporter struct {
	handler ErrorHandler
}

func (r reporter) get() ErrorHandler {
	if r.handler != nil {
		return r.handler
	}
	return DefaultHandler
}

func (r reporter) report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := r.get(); h != nil {
		h.HandleError(err)
	}
}

// call runs fn, converting a panic into a PanicError report. It returns
// false if fn panicked.
func (r reporter) call(op string, fn func()) (ok bool) {
	defer func() {
		if v := recover(); v != nil {
			ok = false
			if h := r.get(); h != nil {
				h.HandlePanic(&PanicError{
					Op:         op,
					Value:      v,
					StackTrace: CaptureStack(),
					Timestamp:  time.Now(),
				})
			}
		}
	}()
	fn()
	return true
}

// CaptureStack returns the current call stack as a string, skipping the
// frames of CaptureStack and its caller.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
