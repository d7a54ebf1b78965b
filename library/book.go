package library

import (
	"strings"
)

// BookID is the server-assigned identifier of a book.
type BookID = int64

// DateString is a calendar date in the format YYYY-MM-DD.
type DateString = string

// BookStatus is the lending state of a book.
type BookStatus string

const (
	StatusAvailable BookStatus = "AVAILABLE"
	StatusBorrowed  BookStatus = "BORROWED"
)

// Valid reports whether s is one of the known statuses.
func (s BookStatus) Valid() bool {
	return s == StatusAvailable || s == StatusBorrowed
}

// CoverType is a cosmetic classification of a book.
type CoverType string

const (
	CoverHard CoverType = "HARD"
	CoverSoft CoverType = "SOFT"
)

// ConditionState is a cosmetic classification of a book.
type ConditionState string

const (
	ConditionNew  ConditionState = "NEW"
	ConditionUsed ConditionState = "USED"
)

// Book is a catalog item as listed by a store, including the resolved borrower name.
type Book struct {
	ID              BookID
	Title           string
	Author          string
	CoverType       CoverType
	PublicationYear int
	Genre           string
	PageCount       int
	ConditionState  ConditionState
	Status          BookStatus
	BorrowerPhone   *PhoneString
	BorrowedDate    *DateString

	// Resolved from the readers table, nil when the book is not borrowed.
	BorrowerFirstName *string
	BorrowerLastName  *string
}

// IsBorrowed reports whether the book is currently lent to a reader.
func (b Book) IsBorrowed() bool {
	return b.Status == StatusBorrowed
}

// CheckLendingInvariant verifies that status, borrower phone and borrowed date agree.
func (b Book) CheckLendingInvariant() error {
	borrowed := b.Status == StatusBorrowed
	if borrowed != (b.BorrowerPhone != nil) || borrowed != (b.BorrowedDate != nil) {
		return ErrLendingInvariantViolated
	}

	return nil
}

// NewBook is the input for adding a book to the catalog.
// It must be constructed with BuildNewBook.
type NewBook struct {
	Title           string
	Author          string
	CoverType       CoverType
	PublicationYear int
	Genre           string
	PageCount       int
	ConditionState  ConditionState
	Status          BookStatus
}

// BuildNewBook validates the input and returns a NewBook.
//
// Title and author must not be blank. An empty status defaults to AVAILABLE; BORROWED is
// rejected because a new book has no borrower.
func BuildNewBook(
	title string,
	author string,
	coverType CoverType,
	publicationYear int,
	genre string,
	pageCount int,
	conditionState ConditionState,
	status BookStatus,
) (NewBook, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if title == "" || author == "" {
		return NewBook{}, ErrTitleOrAuthorMissing
	}

	switch status {
	case "":
		status = StatusAvailable
	case StatusBorrowed:
		return NewBook{}, ErrNewBookBorrowed
	case StatusAvailable:
	default:
		return NewBook{}, ErrInvalidBookStatus
	}

	return NewBook{
		Title:           title,
		Author:          author,
		CoverType:       coverType,
		PublicationYear: publicationYear,
		Genre:           genre,
		PageCount:       pageCount,
		ConditionState:  conditionState,
		Status:          status,
	}, nil
}
