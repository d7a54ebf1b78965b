package desk

import (
	"math"
	"time"

	"github.com/AntonStoeckl/library-desk-go/library"
	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
)

// OverdueAfterDays is how long a book may be held before it counts as overdue.
const OverdueAfterDays = 14

const statusBorrowed = string(library.StatusBorrowed)

// DaysHeld returns the number of started days since the book was borrowed, or 0 if it is not
// borrowed or its borrowed date cannot be parsed.
func DaysHeld(book v1.Book, now time.Time) int {
	if book.Status != statusBorrowed || book.BorrowedDate == nil {
		return 0
	}

	borrowed, err := library.ParseDate(*book.BorrowedDate)
	if err != nil {
		return 0
	}

	held := now.Sub(borrowed)
	if held < 0 {
		held = -held
	}

	return int(math.Ceil(held.Hours() / 24)) //nolint: mnd
}

// IsOverdue reports whether the book has been held for more than OverdueAfterDays.
func IsOverdue(book v1.Book, now time.Time) bool {
	return DaysHeld(book, now) > OverdueAfterDays
}
