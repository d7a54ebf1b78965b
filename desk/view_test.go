package desk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-desk-go/desk"
	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
)

func ptr(s string) *string { return &s }

func givenBooks() []v1.Book {
	return []v1.Book{
		{ID: 1, Title: "War and Peace", Author: "Leo Tolstoy", PublicationYear: 1869},
		{ID: 2, Title: "Infinite Jest", Author: "David Foster Wallace", PublicationYear: 1996, Status: "BORROWED", BorrowerPhone: ptr("79001234567")},
		{ID: 3, Title: "Harry Potter", Author: "J. K. Rowling", PublicationYear: 1997},
		{ID: 4, Title: "The Corrections", Author: "Jonathan Franzen", PublicationYear: 2001},
		{ID: 5, Title: "Anna Karenina", Author: "Leo Tolstoy", PublicationYear: 1878},
	}
}

func ids(books []v1.Book) []int64 {
	result := make([]int64, 0, len(books))
	for _, b := range books {
		result = append(result, b.ID)
	}
	return result
}

func Test_Filter(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "empty query keeps all", query: "", want: []int64{1, 2, 3, 4, 5}},
		{name: "title ignores case", query: "harry", want: []int64{3}},
		{name: "author ignores case", query: "TOLSTOY", want: []int64{1, 5}},
		{name: "borrower phone", query: "7900123", want: []int64{2}},
		{name: "no match", query: "Dostoevsky", want: []int64{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(desk.Filter(givenBooks(), tc.query)))
		})
	}
}

func Test_Sort_ByYearBothDirections(t *testing.T) {
	// setup
	books := []v1.Book{
		{ID: 1, PublicationYear: 1869},
		{ID: 2, PublicationYear: 1997},
		{ID: 3, PublicationYear: 2001},
	}

	// act
	descending := desk.Sort(books, desk.SortConfig{Field: desk.SortByPublicationYear, Direction: desk.Descending})
	ascending := desk.Sort(books, desk.SortConfig{Field: desk.SortByPublicationYear, Direction: desk.Ascending})

	// assert
	assert.Equal(t, []int64{3, 2, 1}, ids(descending))
	assert.Equal(t, []int64{1, 2, 3}, ids(ascending))
	assert.Equal(t, []int64{1, 2, 3}, ids(books), "input is not modified")
}

func Test_Sort_TiesKeepOriginalOrder(t *testing.T) {
	// setup
	books := givenBooks()

	// act
	ascending := desk.Sort(books, desk.SortConfig{Field: desk.SortByAuthor, Direction: desk.Ascending})
	descending := desk.Sort(books, desk.SortConfig{Field: desk.SortByAuthor, Direction: desk.Descending})

	// assert
	assert.Equal(t, []int64{2, 3, 4, 1, 5}, ids(ascending))
	assert.Equal(t, []int64{1, 5, 4, 3, 2}, ids(descending))
}

func Test_View_FiltersThenSorts(t *testing.T) {
	// act
	view := desk.View(givenBooks(), "leo", desk.DefaultSort)

	// assert
	assert.Equal(t, []int64{5, 1}, ids(view))
}
