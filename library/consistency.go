package library

import "context"

// ConsistencyLevel defines which database a store may read from.
type ConsistencyLevel int

const (
	// StrongConsistency reads from the primary database. This is the default, so a client that
	// refreshes its lists right after a borrow or return always sees its own write.
	StrongConsistency ConsistencyLevel = iota

	// EventualConsistency allows reads from a replica database, if the store has one.
	EventualConsistency
)

type contextKey string

// ConsistencyLevelKey is the context key used to store the consistency level preference.
const ConsistencyLevelKey contextKey = "library.consistency_level"

// WithStrongConsistency returns a context that routes reads to the primary database.
func WithStrongConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, StrongConsistency)
}

// WithEventualConsistency returns a context that allows reads from a replica database.
//
// Example usage:
//
//	ctx = library.WithEventualConsistency(ctx)
//	books, err := store.ListBooks(ctx)
func WithEventualConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, EventualConsistency)
}

// GetConsistencyLevel extracts the consistency level from the context, defaulting to StrongConsistency.
func GetConsistencyLevel(ctx context.Context) ConsistencyLevel {
	if level, ok := ctx.Value(ConsistencyLevelKey).(ConsistencyLevel); ok {
		return level
	}

	return StrongConsistency
}

// String provides a string representation of ConsistencyLevel for logging.
func (c ConsistencyLevel) String() string {
	switch c {
	case StrongConsistency:
		return "strong"
	case EventualConsistency:
		return "eventual"
	default:
		return "unknown"
	}
}
