package registeredreaders

const (
	queryType = "RegisteredReaders"
)

// Query represents the intent to list all registered readers.
type Query struct {
	EventualConsistency bool
}

// BuildQuery creates a new Query.
func BuildQuery(eventualConsistency bool) Query {
	return Query{EventualConsistency: eventualConsistency}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
