package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-desk-go/library"
	"github.com/AntonStoeckl/library-desk-go/library/postgresengine/internal/adapters"
)

const (
	defaultBooksTableName   = "books"
	defaultReadersTableName = "readers"
)

// Store is the PostgreSQL persistence store for books and readers.
// It owns no connection itself; the injected pool is acquired and released per statement.
type Store struct {
	db               adapters.DBAdapter
	booksTableName   string
	readersTableName string
	logger           library.Logger
	metricsCollector library.MetricsCollector
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*Store, error) {
	if db == nil {
		return nil, library.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options...)
}

// NewStoreFromPGXPoolAndReplica creates a new Store using a primary and a replica pgx Pool.
// Reads go to the replica only when the context carries library.WithEventualConsistency.
func NewStoreFromPGXPoolAndReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*Store, error) {
	if db == nil || replica == nil {
		return nil, library.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, library.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options...)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, library.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options...)
}

// NewStoreFromSQLXAndReplica creates a new Store using a primary and a replica sqlx.DB.
func NewStoreFromSQLXAndReplica(db *sqlx.DB, replica *sqlx.DB, options ...Option) (*Store, error) {
	if db == nil || replica == nil {
		return nil, library.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapterWithReplica(db, replica), options...)
}

func newStore(db adapters.DBAdapter, options ...Option) (*Store, error) {
	s := &Store{
		db:               db,
		booksTableName:   defaultBooksTableName,
		readersTableName: defaultReadersTableName,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Ping checks that the primary database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return errors.Join(library.ErrQueryingFailed, err)
	}

	return nil
}

// ListBooks returns all books ordered by title, with the borrower's name resolved for borrowed books.
func (s *Store) ListBooks(ctx context.Context) ([]library.Book, error) {
	start := time.Now()

	sqlQuery, args, buildErr := s.buildListBooksQuery()
	if buildErr != nil {
		return nil, s.failed(ctx, operationListBooks, buildErr, time.Since(start))
	}

	rows, queryErr := s.executeQuery(ctx, operationListBooks, sqlQuery, args)
	if queryErr != nil {
		return nil, s.failed(ctx, operationListBooks, queryErr, time.Since(start))
	}
	defer s.closeRows(rows)

	books := make([]library.Book, 0)

	for rows.Next() {
		book, scanErr := scanBook(rows)
		if scanErr != nil {
			s.logError(logMsgScanRowFailed, scanErr)
			return nil, s.failed(ctx, operationListBooks, errors.Join(library.ErrScanningDBRowFailed, scanErr), time.Since(start))
		}

		books = append(books, book)
	}

	if iterErr := rows.Err(); iterErr != nil {
		return nil, s.failed(ctx, operationListBooks, errors.Join(library.ErrQueryingFailed, iterErr), time.Since(start))
	}

	s.succeeded(ctx, operationListBooks, time.Since(start), logAttrRowCount, len(books))

	return books, nil
}

func scanBook(rows adapters.DBRows) (library.Book, error) {
	var (
		book           library.Book
		coverType      string
		conditionState string
		status         string
	)

	err := rows.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&coverType,
		&book.PublicationYear,
		&book.Genre,
		&book.PageCount,
		&conditionState,
		&status,
		&book.BorrowedDate,
		&book.BorrowerPhone,
		&book.BorrowerFirstName,
		&book.BorrowerLastName,
	)
	if err != nil {
		return library.Book{}, err
	}

	book.CoverType = library.CoverType(coverType)
	book.ConditionState = library.ConditionState(conditionState)
	book.Status = library.BookStatus(status)

	return book, nil
}

// AddBook inserts a new book and returns its server-assigned id.
func (s *Store) AddBook(ctx context.Context, book library.NewBook) (library.BookID, error) {
	start := time.Now()

	sqlQuery, args, buildErr := s.buildInsertBookQuery(book)
	if buildErr != nil {
		return 0, s.failed(ctx, operationAddBook, buildErr, time.Since(start))
	}

	// RETURNING needs the primary, whatever consistency the caller asked for.
	rows, queryErr := s.executeQuery(library.WithStrongConsistency(ctx), operationAddBook, sqlQuery, args)
	if queryErr != nil {
		return 0, s.failed(ctx, operationAddBook, queryErr, time.Since(start))
	}
	defer s.closeRows(rows)

	var id library.BookID

	if !rows.Next() {
		iterErr := rows.Err()
		if iterErr == nil {
			iterErr = sql.ErrNoRows
		}

		return 0, s.failed(ctx, operationAddBook, errors.Join(library.ErrQueryingFailed, iterErr), time.Since(start))
	}

	if scanErr := rows.Scan(&id); scanErr != nil {
		s.logError(logMsgScanRowFailed, scanErr)
		return 0, s.failed(ctx, operationAddBook, errors.Join(library.ErrScanningDBRowFailed, scanErr), time.Since(start))
	}

	s.succeeded(ctx, operationAddBook, time.Since(start), logAttrBookID, id)

	return id, nil
}

// RemoveBook permanently deletes a book. It returns library.ErrBookNotFound if no row matched.
func (s *Store) RemoveBook(ctx context.Context, id library.BookID) error {
	start := time.Now()

	sqlQuery, args, buildErr := s.buildDeleteBookQuery(id)
	if buildErr != nil {
		return s.failed(ctx, operationRemoveBook, buildErr, time.Since(start))
	}

	rowsAffected, execErr := s.executeStatement(ctx, operationRemoveBook, sqlQuery, args)
	if execErr != nil {
		return s.failed(ctx, operationRemoveBook, execErr, time.Since(start))
	}

	if rowsAffected == 0 {
		return s.rejected(ctx, operationRemoveBook, library.ErrBookNotFound, time.Since(start), logAttrBookID, id)
	}

	s.succeeded(ctx, operationRemoveBook, time.Since(start), logAttrBookID, id)

	return nil
}

// ListReaders returns all readers ordered by last name.
func (s *Store) ListReaders(ctx context.Context) ([]library.Reader, error) {
	start := time.Now()

	sqlQuery, args, buildErr := s.buildListReadersQuery()
	if buildErr != nil {
		return nil, s.failed(ctx, operationListReaders, buildErr, time.Since(start))
	}

	rows, queryErr := s.executeQuery(ctx, operationListReaders, sqlQuery, args)
	if queryErr != nil {
		return nil, s.failed(ctx, operationListReaders, queryErr, time.Since(start))
	}
	defer s.closeRows(rows)

	readers := make([]library.Reader, 0)

	for rows.Next() {
		var reader library.Reader

		scanErr := rows.Scan(&reader.Phone, &reader.FirstName, &reader.LastName, &reader.BirthDate, &reader.RegistrationDate)
		if scanErr != nil {
			s.logError(logMsgScanRowFailed, scanErr)
			return nil, s.failed(ctx, operationListReaders, errors.Join(library.ErrScanningDBRowFailed, scanErr), time.Since(start))
		}

		readers = append(readers, reader)
	}

	if iterErr := rows.Err(); iterErr != nil {
		return nil, s.failed(ctx, operationListReaders, errors.Join(library.ErrQueryingFailed, iterErr), time.Since(start))
	}

	s.succeeded(ctx, operationListReaders, time.Since(start), logAttrRowCount, len(readers))

	return readers, nil
}

// RegisterReader inserts a reader with today's registration date.
// A duplicate phone is rejected with library.ErrReaderAlreadyRegistered, never overwritten.
func (s *Store) RegisterReader(ctx context.Context, reader library.NewReader) error {
	start := time.Now()

	sqlQuery, args, buildErr := s.buildInsertReaderQuery(reader)
	if buildErr != nil {
		return s.failed(ctx, operationRegisterReader, buildErr, time.Since(start))
	}

	rowsAffected, execErr := s.executeStatement(ctx, operationRegisterReader, sqlQuery, args)
	if execErr != nil {
		if adapters.SQLState(execErr) == adapters.SQLStateUniqueViolation {
			return s.rejected(ctx, operationRegisterReader, library.ErrReaderAlreadyRegistered, time.Since(start), logAttrPhone, reader.Phone)
		}

		return s.failed(ctx, operationRegisterReader, execErr, time.Since(start))
	}

	// ON CONFLICT DO NOTHING: zero rows means the phone was already taken.
	if rowsAffected == 0 {
		return s.rejected(ctx, operationRegisterReader, library.ErrReaderAlreadyRegistered, time.Since(start), logAttrPhone, reader.Phone)
	}

	s.succeeded(ctx, operationRegisterReader, time.Since(start), logAttrPhone, reader.Phone)

	return nil
}

// ReaderExists reports whether a reader with the given phone is registered.
func (s *Store) ReaderExists(ctx context.Context, phone library.PhoneString) (bool, error) {
	start := time.Now()

	sqlQuery, args, buildErr := s.buildReaderExistsQuery(phone)
	if buildErr != nil {
		return false, s.failed(ctx, operationReaderExists, buildErr, time.Since(start))
	}

	exists, err := s.queryExists(ctx, operationReaderExists, sqlQuery, args)
	if err != nil {
		return false, s.failed(ctx, operationReaderExists, err, time.Since(start))
	}

	s.succeeded(ctx, operationReaderExists, time.Since(start), logAttrPhone, phone)

	return exists, nil
}

// LendBook binds an available book to a registered reader with today's date.
//
// The write is one conditional UPDATE that re-checks the AVAILABLE status atomically against the
// current row. If it affects no row, the book is either missing (library.ErrBookNotFound) or
// already borrowed (library.ErrBookNotAvailable). A phone that is not registered fails the
// foreign key and is reported as library.ErrReaderNotFound.
func (s *Store) LendBook(ctx context.Context, id library.BookID, phone library.PhoneString) error {
	start := time.Now()

	sqlQuery, args, buildErr := s.buildLendBookQuery(id, phone)
	if buildErr != nil {
		return s.failed(ctx, operationLendBook, buildErr, time.Since(start))
	}

	rowsAffected, execErr := s.executeStatement(ctx, operationLendBook, sqlQuery, args)
	if execErr != nil {
		if adapters.SQLState(execErr) == adapters.SQLStateForeignKeyViolation {
			return s.rejected(ctx, operationLendBook, library.ErrReaderNotFound, time.Since(start), logAttrPhone, phone)
		}

		return s.failed(ctx, operationLendBook, execErr, time.Since(start))
	}

	if rowsAffected == 0 {
		return s.classifyLendConflict(ctx, id, start)
	}

	s.succeeded(ctx, operationLendBook, time.Since(start), logAttrBookID, id, logAttrPhone, phone)

	return nil
}

// classifyLendConflict tells a missing book from a borrowed one after the conditional update matched nothing.
func (s *Store) classifyLendConflict(ctx context.Context, id library.BookID, start time.Time) error {
	sqlQuery, args, buildErr := s.buildBookExistsQuery(id)
	if buildErr != nil {
		return s.failed(ctx, operationLendBook, buildErr, time.Since(start))
	}

	exists, err := s.queryExists(library.WithStrongConsistency(ctx), operationLendBook, sqlQuery, args)
	if err != nil {
		return s.failed(ctx, operationLendBook, err, time.Since(start))
	}

	if !exists {
		return s.rejected(ctx, operationLendBook, library.ErrBookNotFound, time.Since(start), logAttrBookID, id)
	}

	s.recordLendingConflict(ctx, id)

	return s.rejected(ctx, operationLendBook, library.ErrBookNotAvailable, time.Since(start), logAttrBookID, id)
}

// ReturnBook clears the borrow state of a book.
//
// Returning a book that is already available, or that does not exist, succeeds silently.
// The returned bool reports whether a borrowed book was actually returned.
func (s *Store) ReturnBook(ctx context.Context, id library.BookID) (bool, error) {
	start := time.Now()

	sqlQuery, args, buildErr := s.buildReturnBookQuery(id)
	if buildErr != nil {
		return false, s.failed(ctx, operationReturnBook, buildErr, time.Since(start))
	}

	rowsAffected, execErr := s.executeStatement(ctx, operationReturnBook, sqlQuery, args)
	if execErr != nil {
		return false, s.failed(ctx, operationReturnBook, execErr, time.Since(start))
	}

	s.succeeded(ctx, operationReturnBook, time.Since(start), logAttrBookID, id, logAttrRowsAffected, rowsAffected)

	return rowsAffected > 0, nil
}

// executeQuery runs a query and logs it with its duration.
func (s *Store) executeQuery(ctx context.Context, operation, sqlQuery string, args []any) (adapters.DBRows, error) {
	start := time.Now()
	rows, queryErr := s.db.Query(ctx, sqlQuery, args...)
	s.logQueryWithDuration(sqlQuery, operation, time.Since(start))

	if queryErr != nil {
		s.logError(logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		return nil, errors.Join(library.ErrQueryingFailed, queryErr)
	}

	return rows, nil
}

// executeStatement runs a write statement and returns the number of affected rows.
func (s *Store) executeStatement(ctx context.Context, operation, sqlQuery string, args []any) (int64, error) {
	start := time.Now()
	result, execErr := s.db.Exec(ctx, sqlQuery, args...)
	s.logQueryWithDuration(sqlQuery, operation, time.Since(start))

	if execErr != nil {
		s.logError(logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		return 0, errors.Join(library.ErrExecutingFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		s.logError(logMsgRowsAffectedFailed, rowsAffectedErr)
		return 0, errors.Join(library.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, nil
}

// queryExists runs a query selecting at most one row and reports whether it returned one.
func (s *Store) queryExists(ctx context.Context, operation, sqlQuery string, args []any) (bool, error) {
	rows, queryErr := s.executeQuery(ctx, operation, sqlQuery, args)
	if queryErr != nil {
		return false, queryErr
	}
	defer s.closeRows(rows)

	exists := rows.Next()

	if iterErr := rows.Err(); iterErr != nil {
		return false, errors.Join(library.ErrQueryingFailed, iterErr)
	}

	return exists, nil
}

// closeRows safely closes database rows and logs any errors.
func (s *Store) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if s.logger != nil {
			s.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}
