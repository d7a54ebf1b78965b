package desk

import (
	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
)

// Stats are the aggregate counters shown above the catalog.
type Stats struct {
	Books    int
	Borrowed int
	Readers  int
}

// ComputeStats counts books, borrowed books and readers.
func ComputeStats(books []v1.Book, readers []v1.Reader) Stats {
	stats := Stats{Books: len(books), Readers: len(readers)}
	for _, book := range books {
		if book.Status == statusBorrowed {
			stats.Borrowed++
		}
	}

	return stats
}
