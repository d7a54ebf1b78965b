package registeredreaders

import (
	"github.com/AntonStoeckl/library-desk-go/library"
)

// RegisteredReaders represents the query result containing all readers.
type RegisteredReaders struct {
	Readers []library.Reader
}

// Size returns the number of readers.
func (r RegisteredReaders) Size() int {
	return len(r.Readers)
}
