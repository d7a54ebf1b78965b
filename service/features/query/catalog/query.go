package catalog

const (
	queryType = "BookCatalog"
)

// Query represents the intent to list the book catalog.
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
