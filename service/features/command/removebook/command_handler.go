package removebook

import (
	"context"

	"github.com/AntonStoeckl/library-desk-go/library"
	"github.com/AntonStoeckl/library-desk-go/service/shared/shell"
)

// Store defines the interface needed by the CommandHandler.
type Store interface {
	RemoveBook(ctx context.Context, id library.BookID) error
}

// CommandHandler deletes a book. Deleting an unknown id fails with library.ErrBookNotFound.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the command.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := h.store.RemoveBook(ctx, command.BookID); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}
