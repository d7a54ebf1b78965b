package shell

import "github.com/AntonStoeckl/library-desk-go/library"

// HandlerResult represents the outcome of a command handler execution.
type HandlerResult struct {
	// Idempotent indicates that the command succeeded without changing any state,
	// e.g. returning a book that was not borrowed.
	Idempotent bool

	// BookID is set by commands that create a book.
	BookID library.BookID
}

// NewSuccessResult creates a HandlerResult for operations that changed state.
func NewSuccessResult() HandlerResult {
	return HandlerResult{}
}

// NewIdempotentResult creates a HandlerResult for operations that needed no state change.
func NewIdempotentResult() HandlerResult {
	return HandlerResult{Idempotent: true}
}

// NewBookCreatedResult creates a HandlerResult carrying the id of a newly added book.
func NewBookCreatedResult(id library.BookID) HandlerResult {
	return HandlerResult{BookID: id}
}

// NewErrorResult creates a HandlerResult for failed operations.
func NewErrorResult() HandlerResult {
	return HandlerResult{}
}
