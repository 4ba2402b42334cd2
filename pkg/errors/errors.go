// Package errors provides structured error reporting for the clockface
// toolkit. Errors carry the failing operation and a category; a global
// handler decides what to do with them. The default handler logs to stderr.
package errors

import (
	"fmt"
	"sync"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindTimeSync indicates a network time acquisition failure.
	KindTimeSync
	// KindConfig indicates an invalid configuration or surface setup.
	KindConfig
	// KindRender indicates a rendering error.
	KindRender
)

func (k Kind) String() string {
	switch k {
	case KindTimeSync:
		return "timesync"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the clockface toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "timesync.Acquire").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Handler receives errors reported by the toolkit.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
}

var (
	// defaultHandler is the global error handler.
	defaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler and returns the previous
// one so callers can restore it during cleanup. Pass nil to restore the
// default LogHandler.
func SetHandler(h Handler) Handler {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := defaultHandler
	if h == nil {
		defaultHandler = &LogHandler{}
	} else {
		defaultHandler = h
	}
	return prev
}

// getHandler returns the current error handler.
func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return defaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}
