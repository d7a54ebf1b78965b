package catalog

import (
	"github.com/AntonStoeckl/library-desk-go/library"
)

// BookCatalog represents the query result containing all books.
type BookCatalog struct {
	Books []library.Book
}

// Size returns the number of books in the catalog.
func (c BookCatalog) Size() int {
	return len(c.Books)
}

// Borrowed returns the number of books currently lent out.
func (c BookCatalog) Borrowed() int {
	n := 0
	for _, book := range c.Books {
		if book.IsBorrowed() {
			n++
		}
	}

	return n
}
