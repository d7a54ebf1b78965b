// Package inmemengine provides an in-memory store with the same semantics as the PostgreSQL store.
//
// It backs local runs without a database and the hermetic tests of the API and client layers.
// All operations serialize on one mutex; a borrow is a compare-and-swap on the book's status
// inside that critical section, so concurrent borrows of one book have exactly one winner.
package inmemengine
