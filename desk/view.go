package desk

import (
	"cmp"
	"slices"
	"strings"

	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
)

// SortField is a book field the catalog view can be sorted by.
type SortField string

const (
	SortByTitle           SortField = "title"
	SortByAuthor          SortField = "author"
	SortByPublicationYear SortField = "publicationYear"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortConfig selects the order of the catalog view.
type SortConfig struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSort orders by title, ascending.
var DefaultSort = SortConfig{Field: SortByTitle, Direction: Ascending}

// View filters books by query and sorts the result. The input is not modified.
func View(books []v1.Book, query string, config SortConfig) []v1.Book {
	return Sort(Filter(books, query), config)
}

// Filter keeps the books whose title or author contains query, ignoring case, or whose
// borrower phone contains it. An empty query keeps every book.
func Filter(books []v1.Book, query string) []v1.Book {
	needle := strings.ToLower(query)

	result := make([]v1.Book, 0, len(books))
	for _, book := range books {
		if strings.Contains(strings.ToLower(book.Title), needle) ||
			strings.Contains(strings.ToLower(book.Author), needle) ||
			(book.BorrowerPhone != nil && strings.Contains(*book.BorrowerPhone, query)) {
			result = append(result, book)
		}
	}

	return result
}

// Sort returns a copy of books ordered by config. Ties keep their original relative order.
// Text fields compare by byte order, as the server does for titles.
func Sort(books []v1.Book, config SortConfig) []v1.Book {
	sorted := slices.Clone(books)

	compare := func(a, b v1.Book) int {
		switch config.Field {
		case SortByAuthor:
			return cmp.Compare(a.Author, b.Author)
		case SortByPublicationYear:
			return cmp.Compare(a.PublicationYear, b.PublicationYear)
		default:
			return cmp.Compare(a.Title, b.Title)
		}
	}

	slices.SortStableFunc(sorted, func(a, b v1.Book) int {
		if config.Direction == Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})

	return sorted
}
