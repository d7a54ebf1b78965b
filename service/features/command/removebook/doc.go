// Package removebook implements the Remove Book use case: a book is deleted from the catalog for good.
package removebook
