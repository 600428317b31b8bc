// Package reporter contains the types used to report errors encountered
// while parsing a board file. Every failure carries the position in the
// source that caused it.
package reporter

import "sync"

// ErrorReporter observes an error found during parsing. Parsing a board
// file always aborts on the first error, so a reporter is called at most
// once per parse; it exists so callers can record or rewrite the error
// before the parser returns it.
type ErrorReporter func(err ErrorWithPos) error

// Handler delivers errors to an ErrorReporter and remembers the first
// error seen, which is the one the parse ultimately returns.
type Handler struct {
	reporter ErrorReporter

	mu  sync.Mutex
	err error
}

// NewHandler creates a new Handler. A nil reporter means errors pass
// through unchanged.
func NewHandler(rep ErrorReporter) *Handler {
	return &Handler{reporter: rep}
}

// HandleError delivers err to the reporter, if any, and records the
// result. It returns the error that the parse should propagate.
func (h *Handler) HandleError(err ErrorWithPos) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	var res error = err
	if h.reporter != nil {
		if rerr := h.reporter(err); rerr != nil {
			res = rerr
		}
	}
	h.err = res
	return res
}

// Err returns the error previously delivered to this handler, if any.
func (h *Handler) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
