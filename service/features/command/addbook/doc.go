// Package addbook implements the Add Book use case.
//
// A librarian adds a new book to the catalog. The title and author are required; the book
// always enters the catalog AVAILABLE, and the store assigns its id.
package addbook
