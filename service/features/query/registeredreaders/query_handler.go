package registeredreaders

import (
	"context"

	"github.com/AntonStoeckl/library-desk-go/library"
)

// Store defines the interface needed by the QueryHandler.
type Store interface {
	ListReaders(ctx context.Context) ([]library.Reader, error)
}

// QueryHandler reads the registered readers from the store.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle executes the query.
func (h QueryHandler) Handle(ctx context.Context, query Query) (RegisteredReaders, error) {
	if query.EventualConsistency {
		ctx = library.WithEventualConsistency(ctx)
	}

	readers, err := h.store.ListReaders(ctx)
	if err != nil {
		return RegisteredReaders{}, err
	}

	if readers == nil {
		readers = []library.Reader{}
	}

	return RegisteredReaders{Readers: readers}, nil
}
