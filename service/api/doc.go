// Package api exposes the library desk over a REST API built with huma.
//
// Endpoints, below the configurable prefix (default /api):
//
//	GET    /books          list the catalog, ordered by title
//	POST   /books          add a book
//	DELETE /books/{id}     delete a book
//	GET    /readers        list readers, ordered by last name
//	POST   /readers        register a reader
//	POST   /borrow         lend a book to a reader
//	POST   /return         take a book back
//
// Outside the prefix the router serves /liveness, /readiness and /metrics.
//
// Library errors map to statuses by kind: validation 400, not found 404, conflict 409,
// anything else 500. An unavailable book is the exception and answers 400.
package api
