package postgresengine_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-desk-go/library"
	. "github.com/AntonStoeckl/library-desk-go/testutil/postgresengine/helper"                 //nolint:revive
	. "github.com/AntonStoeckl/library-desk-go/testutil/postgresengine/helper/postgreswrapper" //nolint:revive
)

func Test_AddBook_Then_ListBooks_ShowsTheBookAvailable(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	// arrange
	CleanUp(t, wrapper)

	// act
	id, err := store.AddBook(ctxWithTimeout, FixtureNewBook(t, "Learning Domain-Driven Design", 2021))
	require.NoError(t, err)
	books, err := store.ListBooks(ctxWithTimeout)

	// assert
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, id, books[0].ID)
	assert.Equal(t, library.StatusAvailable, books[0].Status)
	assert.Equal(t, 2021, books[0].PublicationYear)
	assert.Equal(t, library.CoverHard, books[0].CoverType)
	assert.Nil(t, books[0].BorrowerPhone)
	assert.Nil(t, books[0].BorrowedDate)
	assert.NoError(t, books[0].CheckLendingInvariant())
}

func Test_AddBook_AssignsDistinctIDs(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	// arrange
	CleanUp(t, wrapper)

	// act
	firstID, firstErr := store.AddBook(ctxWithTimeout, FixtureNewBook(t, "Dune", 1965))
	secondID, secondErr := store.AddBook(ctxWithTimeout, FixtureNewBook(t, "Dune", 1965))

	// assert
	assert.NoError(t, firstErr)
	assert.NoError(t, secondErr)
	assert.NotEqual(t, firstID, secondID, "books are not deduplicated")
}

func Test_LendBook_Then_ReturnBook_RoundTrip(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	// arrange
	CleanUp(t, wrapper)
	phone := GivenUniquePhone()
	require.NoError(t, store.RegisterReader(ctxWithTimeout, FixtureNewReader(t, phone)))
	id, err := store.AddBook(ctxWithTimeout, FixtureNewBook(t, "War and Peace", 1869))
	require.NoError(t, err)

	// act
	lendErr := store.LendBook(ctxWithTimeout, id, phone)
	booksAfterLend, listErr := store.ListBooks(ctxWithTimeout)
	require.NoError(t, listErr)
	returned, returnErr := store.ReturnBook(ctxWithTimeout, id)
	booksAfterReturn, listErr := store.ListBooks(ctxWithTimeout)
	require.NoError(t, listErr)

	// assert
	assert.NoError(t, lendErr)
	require.Len(t, booksAfterLend, 1)
	lent := booksAfterLend[0]
	assert.Equal(t, library.StatusBorrowed, lent.Status)
	require.NotNil(t, lent.BorrowerPhone)
	assert.Equal(t, phone, *lent.BorrowerPhone)
	require.NotNil(t, lent.BorrowedDate)
	_, parseErr := library.ParseDate(*lent.BorrowedDate)
	assert.NoError(t, parseErr, "borrowed date must be YYYY-MM-DD")
	require.NotNil(t, lent.BorrowerFirstName)
	assert.Equal(t, "Ada", *lent.BorrowerFirstName)
	assert.NoError(t, lent.CheckLendingInvariant())

	assert.NoError(t, returnErr)
	assert.True(t, returned)
	require.Len(t, booksAfterReturn, 1)
	assert.Equal(t, library.StatusAvailable, booksAfterReturn[0].Status)
	assert.Nil(t, booksAfterReturn[0].BorrowerPhone)
	assert.Nil(t, booksAfterReturn[0].BorrowedDate)
	assert.Nil(t, booksAfterReturn[0].BorrowerFirstName)
}

func Test_LendBook_When_BookIsAlreadyBorrowed_ReturnsNotAvailable(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	// arrange
	CleanUp(t, wrapper)
	firstPhone, secondPhone := GivenUniquePhone(), GivenUniquePhone()
	require.NoError(t, store.RegisterReader(ctxWithTimeout, FixtureNewReader(t, firstPhone)))
	require.NoError(t, store.RegisterReader(ctxWithTimeout, FixtureNewReader(t, secondPhone)))
	id, err := store.AddBook(ctxWithTimeout, FixtureNewBook(t, "Dune", 1965))
	require.NoError(t, err)
	require.NoError(t, store.LendBook(ctxWithTimeout, id, firstPhone))

	// act
	err = store.LendBook(ctxWithTimeout, id, secondPhone)

	// assert
	assert.ErrorIs(t, err, library.ErrBookNotAvailable)
	assert.ErrorIs(t, err, library.ErrConflict)

	books, listErr := store.ListBooks(ctxWithTimeout)
	require.NoError(t, listErr)
	require.Len(t, books, 1)
	assert.Equal(t, firstPhone, *books[0].BorrowerPhone, "the first borrower must be kept")
}

func Test_LendBook_When_BookDoesNotExist_ReturnsBookNotFound(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	// arrange
	CleanUp(t, wrapper)
	phone := GivenUniquePhone()
	require.NoError(t, store.RegisterReader(ctxWithTimeout, FixtureNewReader(t, phone)))

	// act
	err := store.LendBook(ctxWithTimeout, 999_999, phone)

	// assert
	assert.ErrorIs(t, err, library.ErrBookNotFound)
}

func Test_LendBook_When_ReaderIsNotRegistered_ReturnsReaderNotFound(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	// arrange
	CleanUp(t, wrapper)
	id, err := store.AddBook(ctxWithTimeout, FixtureNewBook(t, "Dune", 1965))
	require.NoError(t, err)

	// act
	err = store.LendBook(ctxWithTimeout, id, GivenUniquePhone())

	// assert
	assert.ErrorIs(t, err, library.ErrReaderNotFound)

	books, listErr := store.ListBooks(ctxWithTimeout)
	require.NoError(t, listErr)
	assert.Equal(t, library.StatusAvailable, books[0].Status)
}

func Test_LendBook_Concurrently_ExactlyOneBorrowerWins(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	const numBorrowers = 10

	// arrange
	CleanUp(t, wrapper)
	id, err := store.AddBook(ctxWithTimeout, FixtureNewBook(t, "Dune", 1965))
	require.NoError(t, err)

	phones := make([]library.PhoneString, 0, numBorrowers)
	for range numBorrowers {
		phone := GivenUniquePhone()
		require.NoError(t, store.RegisterReader(ctxWithTimeout, FixtureNewReader(t, phone)))
		phones = append(phones, phone)
	}

	var (
		wg           sync.WaitGroup
		succeeded    atomic.Int32
		notAvailable atomic.Int32
		start        = make(chan struct{})
	)

	// act
	for _, phone := range phones {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			lendErr := store.LendBook(ctxWithTimeout, id, phone)
			switch {
			case lendErr == nil:
				succeeded.Add(1)
			case assert.ErrorIs(t, lendErr, library.ErrBookNotAvailable):
				notAvailable.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	// assert
	assert.Equal(t, int32(1), succeeded.Load(), "exactly one borrow must win")
	assert.Equal(t, int32(numBorrowers-1), notAvailable.Load())

	books, listErr := store.ListBooks(ctxWithTimeout)
	require.NoError(t, listErr)
	require.Len(t, books, 1)
	assert.Equal(t, library.StatusBorrowed, books[0].Status)
	assert.Contains(t, phones, *books[0].BorrowerPhone)
	assert.NoError(t, books[0].CheckLendingInvariant())
}

func Test_ReturnBook_When_BookIsAvailable_SucceedsSilently(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	// arrange
	CleanUp(t, wrapper)
	id, err := store.AddBook(ctxWithTimeout, FixtureNewBook(t, "Dune", 1965))
	require.NoError(t, err)

	// act
	returned, returnErr := store.ReturnBook(ctxWithTimeout, id)

	// assert
	assert.NoError(t, returnErr)
	assert.False(t, returned)
}

func Test_ReturnBook_When_BookDoesNotExist_SucceedsSilently(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	// arrange
	CleanUp(t, wrapper)

	// act
	returned, err := store.ReturnBook(ctxWithTimeout, 999_999)

	// assert
	assert.NoError(t, err)
	assert.False(t, returned)
}

func Test_RemoveBook(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	// arrange
	CleanUp(t, wrapper)
	id, err := store.AddBook(ctxWithTimeout, FixtureNewBook(t, "Dune", 1965))
	require.NoError(t, err)

	// act
	removeErr := store.RemoveBook(ctxWithTimeout, id)
	secondRemoveErr := store.RemoveBook(ctxWithTimeout, id)

	// assert
	assert.NoError(t, removeErr)
	assert.ErrorIs(t, secondRemoveErr, library.ErrBookNotFound)

	books, listErr := store.ListBooks(ctxWithTimeout)
	require.NoError(t, listErr)
	assert.Empty(t, books)
}

func Test_RegisterReader_When_PhoneIsTaken_RejectsAndKeepsTheFirstReader(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	// arrange
	CleanUp(t, wrapper)
	phone := GivenUniquePhone()
	require.NoError(t, store.RegisterReader(ctxWithTimeout, FixtureNewReader(t, phone)))

	duplicate, err := library.BuildNewReader(phone, "Grace", "Hopper", "1906-12-09")
	require.NoError(t, err)

	// act
	err = store.RegisterReader(ctxWithTimeout, duplicate)

	// assert
	assert.ErrorIs(t, err, library.ErrReaderAlreadyRegistered)

	readers, listErr := store.ListReaders(ctxWithTimeout)
	require.NoError(t, listErr)
	require.Len(t, readers, 1)
	assert.Equal(t, "Ada", readers[0].FirstName)
	assert.Equal(t, "1990-12-10", readers[0].BirthDate)
	_, parseErr := library.ParseDate(readers[0].RegistrationDate)
	assert.NoError(t, parseErr, "registration date must be YYYY-MM-DD")
}

func Test_ReaderExists(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	// arrange
	CleanUp(t, wrapper)
	phone := GivenUniquePhone()
	require.NoError(t, store.RegisterReader(ctxWithTimeout, FixtureNewReader(t, phone)))

	// act
	exists, existsErr := store.ReaderExists(ctxWithTimeout, phone)
	missing, missingErr := store.ReaderExists(ctxWithTimeout, GivenUniquePhone())

	// assert
	assert.NoError(t, existsErr)
	assert.True(t, exists)
	assert.NoError(t, missingErr)
	assert.False(t, missing)
}

func Test_Schema_Rejects_BorrowedBookWithoutBorrower(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	store := wrapper.GetStore()

	// arrange
	CleanUp(t, wrapper)
	id, err := store.AddBook(ctxWithTimeout, FixtureNewBook(t, "Dune", 1965))
	require.NoError(t, err)

	// act
	forceErr := ForceBookState(wrapper, id, string(library.StatusBorrowed), nil)

	// assert
	assert.Error(t, forceErr, "the lending_state constraint must reject the row")
}

func Test_EnsureSchema_IsIdempotent(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()

	// act
	err := wrapper.GetStore().EnsureSchema(ctxWithTimeout)

	// assert
	assert.NoError(t, err)
}
