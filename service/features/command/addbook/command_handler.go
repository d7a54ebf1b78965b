package addbook

import (
	"context"

	"github.com/AntonStoeckl/library-desk-go/library"
	"github.com/AntonStoeckl/library-desk-go/service/shared/shell"
)

// Store defines the interface needed by the CommandHandler.
type Store interface {
	AddBook(ctx context.Context, book library.NewBook) (library.BookID, error)
}

// CommandHandler adds a book and reports the assigned id.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the command.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	id, err := h.store.AddBook(ctx, command.Book)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewBookCreatedResult(id), nil
}
