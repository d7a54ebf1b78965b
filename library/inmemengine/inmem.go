package inmemengine

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/AntonStoeckl/library-desk-go/library"
)

// Store implements the library store contract in memory.
type Store struct {
	mu      sync.Mutex
	nextID  library.BookID
	books   []library.Book
	readers map[library.PhoneString]library.Reader
	now     func() time.Time
}

// Option defines a functional option for configuring Store.
type Option func(*Store)

// WithClock replaces the clock used for registration and borrow dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty Store.
func NewStore(options ...Option) *Store {
	s := &Store{
		nextID:  1,
		books:   make([]library.Book, 0),
		readers: make(map[library.PhoneString]library.Reader),
		now:     time.Now,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Ping always succeeds unless the context is done.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// ListBooks returns all books ordered by title, with the borrower's name resolved for borrowed books.
func (s *Store) ListBooks(ctx context.Context) ([]library.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]library.Book, 0, len(s.books))
	for _, book := range s.books {
		listed := copyBook(book)

		if book.BorrowerPhone != nil {
			if reader, ok := s.readers[*book.BorrowerPhone]; ok {
				listed.BorrowerFirstName = ptr(reader.FirstName)
				listed.BorrowerLastName = ptr(reader.LastName)
			}
		}

		books = append(books, listed)
	}

	slices.SortStableFunc(books, func(a, b library.Book) int {
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID, b.ID))
	})

	return books, nil
}

// AddBook stores a new book and returns its assigned id.
func (s *Store) AddBook(ctx context.Context, book library.NewBook) (library.BookID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	s.books = append(s.books, library.Book{
		ID:              id,
		Title:           book.Title,
		Author:          book.Author,
		CoverType:       book.CoverType,
		PublicationYear: book.PublicationYear,
		Genre:           book.Genre,
		PageCount:       book.PageCount,
		ConditionState:  book.ConditionState,
		Status:          book.Status,
	})

	return id, nil
}

// RemoveBook deletes a book. It returns library.ErrBookNotFound if there is none with that id.
func (s *Store) RemoveBook(ctx context.Context, id library.BookID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return library.ErrBookNotFound
	}

	s.books = slices.Delete(s.books, idx, idx+1)

	return nil
}

// ListReaders returns all readers ordered by last name.
func (s *Store) ListReaders(ctx context.Context) ([]library.Reader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	readers := make([]library.Reader, 0, len(s.readers))
	for _, reader := range s.readers {
		readers = append(readers, reader)
	}

	slices.SortFunc(readers, func(a, b library.Reader) int {
		return cmp.Or(cmp.Compare(a.LastName, b.LastName), cmp.Compare(a.Phone, b.Phone))
	})

	return readers, nil
}

// RegisterReader stores a reader with today's registration date.
// A duplicate phone is rejected with library.ErrReaderAlreadyRegistered.
func (s *Store) RegisterReader(ctx context.Context, reader library.NewReader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.readers[reader.Phone]; ok {
		return library.ErrReaderAlreadyRegistered
	}

	s.readers[reader.Phone] = library.Reader{
		Phone:            reader.Phone,
		FirstName:        reader.FirstName,
		LastName:         reader.LastName,
		BirthDate:        reader.BirthDate,
		RegistrationDate: s.today(),
	}

	return nil
}

// ReaderExists reports whether a reader with the given phone is registered.
func (s *Store) ReaderExists(ctx context.Context, phone library.PhoneString) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.readers[phone]

	return ok, nil
}

// LendBook binds an available book to a registered reader with today's date.
func (s *Store) LendBook(ctx context.Context, id library.BookID, phone library.PhoneString) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return library.ErrBookNotFound
	}

	if s.books[idx].Status != library.StatusAvailable {
		return library.ErrBookNotAvailable
	}

	if _, ok := s.readers[phone]; !ok {
		return library.ErrReaderNotFound
	}

	s.books[idx].Status = library.StatusBorrowed
	s.books[idx].BorrowerPhone = ptr(phone)
	s.books[idx].BorrowedDate = ptr(s.today())

	return nil
}

// ReturnBook clears the borrow state of a book. Returning an available or missing book succeeds silently.
// The returned bool reports whether a borrowed book was actually returned.
func (s *Store) ReturnBook(ctx context.Context, id library.BookID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 || s.books[idx].Status != library.StatusBorrowed {
		return false, nil
	}

	s.books[idx].Status = library.StatusAvailable
	s.books[idx].BorrowerPhone = nil
	s.books[idx].BorrowedDate = nil

	return true, nil
}

func (s *Store) indexOf(id library.BookID) int {
	return slices.IndexFunc(s.books, func(b library.Book) bool { return b.ID == id })
}

func (s *Store) today() library.DateString {
	return s.now().Format(time.DateOnly)
}

func copyBook(book library.Book) library.Book {
	if book.BorrowerPhone != nil {
		book.BorrowerPhone = ptr(*book.BorrowerPhone)
	}

	if book.BorrowedDate != nil {
		book.BorrowedDate = ptr(*book.BorrowedDate)
	}

	return book
}

func ptr[T any](v T) *T {
	return &v
}
