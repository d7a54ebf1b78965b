package addbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-desk-go/library"
	"github.com/AntonStoeckl/library-desk-go/library/inmemengine"
	"github.com/AntonStoeckl/library-desk-go/service/features/command/addbook"
)

func Test_AddBook_AssignsIDAndStoresTheBookAvailable(t *testing.T) {
	// setup
	ctx := t.Context()
	store := inmemengine.NewStore()
	handler := addbook.NewCommandHandler(store)

	// arrange
	command, err := addbook.BuildCommand("  Dune ", "Frank Herbert", library.CoverSoft, 1965, "Sci-Fi", 412, library.ConditionUsed, "")
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, command)

	// assert
	assert.NoError(t, err)
	assert.Positive(t, result.BookID)

	books, _ := store.ListBooks(ctx)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title, "title is trimmed")
	assert.Equal(t, library.StatusAvailable, books[0].Status)
}

func Test_AddBook_BuildCommand_Rejects(t *testing.T) {
	testCases := []struct {
		name   string
		title  string
		author string
		status library.BookStatus
		want   error
	}{
		{name: "blank title", title: "  ", author: "Tolstoy", want: library.ErrTitleOrAuthorMissing},
		{name: "missing author", title: "War and Peace", author: "", want: library.ErrTitleOrAuthorMissing},
		{name: "borrowed new book", title: "War and Peace", author: "Tolstoy", status: library.StatusBorrowed, want: library.ErrNewBookBorrowed},
		{name: "unknown status", title: "War and Peace", author: "Tolstoy", status: "LOST", want: library.ErrInvalidBookStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := addbook.BuildCommand(tc.title, tc.author, library.CoverHard, 1869, "", 1225, library.ConditionNew, tc.status)

			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, library.ErrValidation)
		})
	}
}
