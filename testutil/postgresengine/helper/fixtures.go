package helper

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-desk-go/library"
)

// GivenUniquePhone returns a valid reader phone that is very unlikely to collide with other tests.
func GivenUniquePhone() library.PhoneString {
	return fmt.Sprintf("7%010d", rand.Int64N(10_000_000_000))
}

// FixtureNewBook returns a valid, available book.
func FixtureNewBook(t testing.TB, title string, publicationYear int) library.NewBook {
	book, err := library.BuildNewBook(
		title,
		"Vlad Khononov",
		library.CoverHard,
		publicationYear,
		"Software",
		320,
		library.ConditionNew,
		library.StatusAvailable,
	)
	require.NoError(t, err, "error in arranging test data")

	return book
}

// FixtureNewReader returns a valid reader with the given phone.
func FixtureNewReader(t testing.TB, phone library.PhoneString) library.NewReader {
	reader, err := library.BuildNewReader(phone, "Ada", "Lovelace", "1990-12-10")
	require.NoError(t, err, "error in arranging test data")

	return reader
}
