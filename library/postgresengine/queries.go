package postgresengine

import (
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/AntonStoeckl/library-desk-go/library"
)

const (
	dialectPostgres    = "postgres"
	aliasBooks         = "b"
	aliasReaders       = "r"
	colID              = "id"
	colTitle           = "title"
	colAuthor          = "author"
	colCoverType       = "cover_type"
	colPublicationYear = "publication_year"
	colGenre           = "genre"
	colPageCount       = "page_count"
	colConditionState  = "condition_state"
	colStatus          = "status"
	colBorrowedDate    = "borrowed_date"
	colBorrowerPhone   = "borrower_phone"
	colPhone           = "phone"
	colFirstName       = "first_name"
	colLastName        = "last_name"
	colBirthDate       = "birth_date"
	colRegistrationDay = "registration_date"
	sqlCurrentDate     = "CURRENT_DATE"
	sqlFormatDate      = "to_char(?, 'YYYY-MM-DD')"
	sqlCastDate        = "CAST(CAST(? AS text) AS date)"
)

type (
	sqlQueryString = string
	sqlArgs        = []any
)

// dialect returns a builder that renders positional placeholders ($1, $2, ...) instead of inlined values.
func dialect() goqu.DialectWrapper {
	return goqu.Dialect(dialectPostgres)
}

func qualified(alias, col string) exp.IdentifierExpression {
	return goqu.I(alias + "." + col)
}

func formattedDate(alias, col string) exp.AliasedExpression {
	return goqu.L(sqlFormatDate, qualified(alias, col)).As(col)
}

func (s *Store) buildListBooksQuery() (sqlQueryString, sqlArgs, error) {
	selectStmt := dialect().
		From(goqu.T(s.booksTableName).As(aliasBooks)).
		Prepared(true).
		LeftJoin(
			goqu.T(s.readersTableName).As(aliasReaders),
			goqu.On(qualified(aliasBooks, colBorrowerPhone).Eq(qualified(aliasReaders, colPhone))),
		).
		Select(
			qualified(aliasBooks, colID),
			qualified(aliasBooks, colTitle),
			qualified(aliasBooks, colAuthor),
			qualified(aliasBooks, colCoverType),
			qualified(aliasBooks, colPublicationYear),
			qualified(aliasBooks, colGenre),
			qualified(aliasBooks, colPageCount),
			qualified(aliasBooks, colConditionState),
			qualified(aliasBooks, colStatus),
			formattedDate(aliasBooks, colBorrowedDate),
			qualified(aliasBooks, colBorrowerPhone),
			qualified(aliasReaders, colFirstName),
			qualified(aliasReaders, colLastName),
		).
		Order(qualified(aliasBooks, colTitle).Asc(), qualified(aliasBooks, colID).Asc())

	return toSQL(selectStmt)
}

func (s *Store) buildInsertBookQuery(book library.NewBook) (sqlQueryString, sqlArgs, error) {
	insertStmt := dialect().
		Insert(s.booksTableName).
		Prepared(true).
		Rows(goqu.Record{
			colTitle:           book.Title,
			colAuthor:          book.Author,
			colCoverType:       string(book.CoverType),
			colPublicationYear: book.PublicationYear,
			colGenre:           book.Genre,
			colPageCount:       book.PageCount,
			colConditionState:  string(book.ConditionState),
			colStatus:          string(book.Status),
		}).
		Returning(colID)

	return toSQL(insertStmt)
}

func (s *Store) buildDeleteBookQuery(id library.BookID) (sqlQueryString, sqlArgs, error) {
	deleteStmt := dialect().
		Delete(s.booksTableName).
		Prepared(true).
		Where(goqu.C(colID).Eq(id))

	return toSQL(deleteStmt)
}

func (s *Store) buildBookExistsQuery(id library.BookID) (sqlQueryString, sqlArgs, error) {
	selectStmt := dialect().
		From(s.booksTableName).
		Prepared(true).
		Select(goqu.C(colID)).
		Where(goqu.C(colID).Eq(id)).
		Limit(1)

	return toSQL(selectStmt)
}

func (s *Store) buildListReadersQuery() (sqlQueryString, sqlArgs, error) {
	selectStmt := dialect().
		From(goqu.T(s.readersTableName).As(aliasReaders)).
		Prepared(true).
		Select(
			qualified(aliasReaders, colPhone),
			qualified(aliasReaders, colFirstName),
			qualified(aliasReaders, colLastName),
			formattedDate(aliasReaders, colBirthDate),
			formattedDate(aliasReaders, colRegistrationDay),
		).
		Order(qualified(aliasReaders, colLastName).Asc(), qualified(aliasReaders, colPhone).Asc())

	return toSQL(selectStmt)
}

func (s *Store) buildInsertReaderQuery(reader library.NewReader) (sqlQueryString, sqlArgs, error) {
	insertStmt := dialect().
		Insert(s.readersTableName).
		Prepared(true).
		Rows(goqu.Record{
			colPhone:           reader.Phone,
			colFirstName:       reader.FirstName,
			colLastName:        reader.LastName,
			colBirthDate:       goqu.L(sqlCastDate, reader.BirthDate),
			colRegistrationDay: goqu.L(sqlCurrentDate),
		}).
		OnConflict(goqu.DoNothing())

	return toSQL(insertStmt)
}

func (s *Store) buildReaderExistsQuery(phone library.PhoneString) (sqlQueryString, sqlArgs, error) {
	selectStmt := dialect().
		From(s.readersTableName).
		Prepared(true).
		Select(goqu.C(colPhone)).
		Where(goqu.C(colPhone).Eq(phone)).
		Limit(1)

	return toSQL(selectStmt)
}

// buildLendBookQuery builds the conditional update that only matches a book which is still AVAILABLE.
func (s *Store) buildLendBookQuery(id library.BookID, phone library.PhoneString) (sqlQueryString, sqlArgs, error) {
	updateStmt := dialect().
		Update(s.booksTableName).
		Prepared(true).
		Set(goqu.Record{
			colStatus:        string(library.StatusBorrowed),
			colBorrowerPhone: phone,
			colBorrowedDate:  goqu.L(sqlCurrentDate),
		}).
		Where(
			goqu.C(colID).Eq(id),
			goqu.C(colStatus).Eq(string(library.StatusAvailable)),
		)

	return toSQL(updateStmt)
}

// buildReturnBookQuery builds the update clearing the borrow state.
// Rows that are already AVAILABLE are not touched, they hold the target state anyway.
func (s *Store) buildReturnBookQuery(id library.BookID) (sqlQueryString, sqlArgs, error) {
	updateStmt := dialect().
		Update(s.booksTableName).
		Prepared(true).
		Set(goqu.Record{
			colStatus:        string(library.StatusAvailable),
			colBorrowerPhone: nil,
			colBorrowedDate:  nil,
		}).
		Where(
			goqu.C(colID).Eq(id),
			goqu.C(colStatus).Eq(string(library.StatusBorrowed)),
		)

	return toSQL(updateStmt)
}

type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

func toSQL(stmt sqlBuilder) (sqlQueryString, sqlArgs, error) {
	sqlQuery, args, toSQLErr := stmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(library.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}
