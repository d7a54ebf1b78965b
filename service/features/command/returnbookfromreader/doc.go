// Package returnbookfromreader implements the Return Book use case.
//
// Returning a book that is not borrowed, or does not exist, succeeds without changing anything.
package returnbookfromreader
