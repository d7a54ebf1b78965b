package lendbooktoreader

import (
	"context"

	"github.com/AntonStoeckl/library-desk-go/library"
	"github.com/AntonStoeckl/library-desk-go/service/shared/shell"
)

// Store defines the interface needed by the CommandHandler.
type Store interface {
	ReaderExists(ctx context.Context, phone library.PhoneString) (bool, error)
	LendBook(ctx context.Context, id library.BookID, phone library.PhoneString) error
}

// CommandHandler lends books to registered readers.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the command.
//
// The reader check gives the clearer error up front. The store still enforces it on the write.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	ctx = library.WithStrongConsistency(ctx)

	exists, err := h.store.ReaderExists(ctx, command.Phone)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	if !exists {
		return shell.NewErrorResult(), library.ErrReaderNotFound
	}

	if err := h.store.LendBook(ctx, command.BookID, command.Phone); err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(), nil
}
