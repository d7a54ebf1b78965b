package shell

import (
	"context"
)

// Command represents the contract for all command types of the library service.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CommandHandler defines the contract for components that execute a command against the store.
// Handlers return a HandlerResult carrying business outcomes (idempotency, created ids).
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// Query represents the contract for all query types of the library service.
type Query interface {
	QueryType() string
}

// QueryResult represents the contract for all query result types.
// Size reports the number of rows, for logs and metrics.
type QueryResult interface {
	Size() int
}

// QueryHandler defines the contract for components that read a projection from the store.
type QueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
