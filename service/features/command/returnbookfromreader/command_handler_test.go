package returnbookfromreader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-desk-go/library"
	"github.com/AntonStoeckl/library-desk-go/library/inmemengine"
	"github.com/AntonStoeckl/library-desk-go/service/features/command/returnbookfromreader"
	. "github.com/AntonStoeckl/library-desk-go/testutil/postgresengine/helper" //nolint:revive
)

func Test_ReturnBookFromReader_ClearsTheBorrower(t *testing.T) {
	// setup
	ctx := t.Context()
	store := inmemengine.NewStore()
	handler := returnbookfromreader.NewCommandHandler(store)

	// arrange
	phone := GivenUniquePhone()
	require.NoError(t, store.RegisterReader(ctx, FixtureNewReader(t, phone)))
	bookID, _ := store.AddBook(ctx, FixtureNewBook(t, "Dune", 1965))
	require.NoError(t, store.LendBook(ctx, bookID, phone))
	command, err := returnbookfromreader.BuildCommand(bookID)
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, command)

	// assert
	assert.NoError(t, err)
	assert.False(t, result.Idempotent)

	books, _ := store.ListBooks(ctx)
	require.Len(t, books, 1)
	assert.Equal(t, library.StatusAvailable, books[0].Status)
	assert.Nil(t, books[0].BorrowerPhone)
	assert.Nil(t, books[0].BorrowedDate)
}

func Test_ReturnBookFromReader_NothingToReturnIsIdempotent(t *testing.T) {
	// setup
	ctx := t.Context()
	store := inmemengine.NewStore()
	handler := returnbookfromreader.NewCommandHandler(store)

	// arrange
	availableID, _ := store.AddBook(ctx, FixtureNewBook(t, "Dune", 1965))

	for _, id := range []library.BookID{availableID, 4711} {
		command, err := returnbookfromreader.BuildCommand(id)
		require.NoError(t, err)

		// act
		result, err := handler.Handle(ctx, command)

		// assert
		assert.NoError(t, err)
		assert.True(t, result.Idempotent)
	}
}

func Test_ReturnBookFromReader_BuildCommand_RejectsMissingID(t *testing.T) {
	_, err := returnbookfromreader.BuildCommand(-1)

	assert.ErrorIs(t, err, library.ErrBookIDMissing)
}
