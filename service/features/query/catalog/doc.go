// Package catalog implements the Book Catalog query use case.
//
// The query returns every book, ordered by title, with the borrower's name resolved for books
// that are currently lent out. By default it reads from the primary; a caller that can live with
// slightly stale rows may ask for eventual consistency, which routes the read to a replica when
// one is configured.
package catalog
