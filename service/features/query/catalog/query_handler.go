package catalog

import (
	"context"

	"github.com/AntonStoeckl/library-desk-go/library"
)

// Store defines the interface needed by the QueryHandler.
type Store interface {
	ListBooks(ctx context.Context) ([]library.Book, error)
}

// QueryHandler reads the catalog from the store.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle executes the query.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BookCatalog, error) {
	if query.EventualConsistency {
		ctx = library.WithEventualConsistency(ctx)
	}

	books, err := h.store.ListBooks(ctx)
	if err != nil {
		return BookCatalog{}, err
	}

	if books == nil {
		books = []library.Book{}
	}

	return BookCatalog{Books: books}, nil
}
