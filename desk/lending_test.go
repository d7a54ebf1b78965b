package desk_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-desk-go/desk"
	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
)

func Test_DaysHeldAndOverdue(t *testing.T) {
	now := time.Date(2024, 3, 20, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		book        v1.Book
		wantDays    int
		wantOverdue bool
	}{
		{name: "available", book: v1.Book{Status: "AVAILABLE"}, wantDays: 0},
		{name: "borrowed today", book: v1.Book{Status: "BORROWED", BorrowedDate: ptr("2024-03-20")}, wantDays: 1},
		{name: "borrowed 14 days ago", book: v1.Book{Status: "BORROWED", BorrowedDate: ptr("2024-03-06")}, wantDays: 15, wantOverdue: true},
		{name: "borrowed 13 days ago", book: v1.Book{Status: "BORROWED", BorrowedDate: ptr("2024-03-07")}, wantDays: 14},
		{name: "unparsable date", book: v1.Book{Status: "BORROWED", BorrowedDate: ptr("yesterday")}, wantDays: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantDays, desk.DaysHeld(tc.book, now))
			assert.Equal(t, tc.wantOverdue, desk.IsOverdue(tc.book, now))
		})
	}
}

func Test_ComputeStats(t *testing.T) {
	// act
	stats := desk.ComputeStats(givenBooks(), []v1.Reader{{Phone: "79001234567"}})

	// assert
	assert.Equal(t, desk.Stats{Books: 5, Borrowed: 1, Readers: 1}, stats)
}
