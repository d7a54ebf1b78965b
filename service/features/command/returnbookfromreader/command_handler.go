package returnbookfromreader

import (
	"context"

	"github.com/AntonStoeckl/library-desk-go/library"
	"github.com/AntonStoeckl/library-desk-go/service/shared/shell"
)

// Store defines the interface needed by the CommandHandler.
type Store interface {
	ReturnBook(ctx context.Context, id library.BookID) (bool, error)
}

// CommandHandler takes books back.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the command.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	returned, err := h.store.ReturnBook(ctx, command.BookID)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	if !returned {
		return shell.NewIdempotentResult(), nil
	}

	return shell.NewSuccessResult(), nil
}
