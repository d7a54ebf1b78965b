// Package library provides the core types of the library desk: books with their lending state,
// registered readers, and the error definitions shared by every store implementation.
//
// A Book is either AVAILABLE or BORROWED. The borrow and return operations are the only
// transitions, and a borrowed book always carries exactly one borrower phone and a borrow date:
//
//	status = BORROWED  <=>  BorrowerPhone != nil  <=>  BorrowedDate != nil
//
// Readers are identified by their phone number (country code 7 followed by 10 digits).
//
// Store implementations live in sub-packages:
//   - postgresengine: PostgreSQL via pgx, database/sql or sqlx
//   - inmemengine: in-memory, for local runs and hermetic tests
//
// Common usage pattern:
//
//	book, err := library.BuildNewBook("War and Peace", "Tolstoy", library.CoverHard, 1869,
//		"Novel", 1225, library.ConditionNew, library.StatusAvailable)
//	if err != nil {
//		return err // errors.Is(err, library.ErrValidation)
//	}
//
//	id, err := store.AddBook(ctx, book)
//	err = store.LendBook(ctx, id, "79001234567")
package library
