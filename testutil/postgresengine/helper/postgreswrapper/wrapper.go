package postgreswrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-desk-go/library/postgresengine"
	"github.com/AntonStoeckl/library-desk-go/testutil/postgresengine/config"
)

// Engine type constants
const (
	typePGXPool = "pgx.pool"
	typeSQLDB   = "sql.db"
	typeSQLXDB  = "sqlx.db"
)

const sqlTruncateTables = "TRUNCATE TABLE books, readers RESTART IDENTITY CASCADE"

// Wrapper interface to abstract over different engine types
type Wrapper interface {
	GetStore() *postgresengine.Store
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing
type PGXPoolWrapper struct {
	pool  *pgxpool.Pool
	store *postgresengine.Store
}

func (e *PGXPoolWrapper) GetStore() *postgresengine.Store {
	return e.store
}

func (e *PGXPoolWrapper) Close() {
	e.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing
type SQLDBWrapper struct {
	db    *sql.DB
	store *postgresengine.Store
}

func (e *SQLDBWrapper) GetStore() *postgresengine.Store {
	return e.store
}

func (e *SQLDBWrapper) Close() {
	_ = e.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx.DB-based testing
type SQLXWrapper struct {
	db    *sqlx.DB
	store *postgresengine.Store
}

func (e *SQLXWrapper) GetStore() *postgresengine.Store {
	return e.store
}

func (e *SQLXWrapper) Close() {
	_ = e.db.Close() // ignore error
}

// CreateWrapperWithTestConfig creates the appropriate wrapper based on the environment variable
// and makes sure the schema exists.
func CreateWrapperWithTestConfig(t testing.TB, options ...postgresengine.Option) Wrapper {
	var wrapper Wrapper

	switch engineTypeFromEnv() {
	case typePGXPool, "":
		connPool, err := pgxpool.NewWithConfig(context.Background(), config.PostgresPGXPoolTestConfig())
		require.NoError(t, err, "error connecting to DB pool in test setup")

		store, err := postgresengine.NewStoreFromPGXPool(connPool, options...)
		require.NoError(t, err, "error creating store")

		wrapper = &PGXPoolWrapper{pool: connPool, store: store}

	case typeSQLDB:
		db := config.PostgresSQLDBTestConfig()

		store, err := postgresengine.NewStoreFromSQLDB(db, options...)
		require.NoError(t, err, "error creating store")

		wrapper = &SQLDBWrapper{db: db, store: store}

	case typeSQLXDB:
		db := config.PostgresSQLXTestConfig()

		store, err := postgresengine.NewStoreFromSQLX(db, options...)
		require.NoError(t, err, "error creating store")

		wrapper = &SQLXWrapper{db: db, store: store}

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", engineTypeFromEnv()))
	}

	require.NoError(t, wrapper.GetStore().EnsureSchema(context.Background()), "error creating the schema")

	return wrapper
}

// TryCreateStoreWithTableNames tries to create a store with the given table names and returns the error (for testing error cases)
func TryCreateStoreWithTableNames(t testing.TB, booksTableName, readersTableName string) error {
	options := []postgresengine.Option{
		postgresengine.WithBooksTableName(booksTableName),
		postgresengine.WithReadersTableName(readersTableName),
	}

	switch engineTypeFromEnv() {
	case typePGXPool, "":
		connPool, err := pgxpool.NewWithConfig(context.Background(), config.PostgresPGXPoolTestConfig())
		require.NoError(t, err, "error connecting to DB pool in test setup")
		defer connPool.Close()

		_, err = postgresengine.NewStoreFromPGXPool(connPool, options...)
		return err

	case typeSQLDB:
		db := config.PostgresSQLDBTestConfig()
		defer func(db *sql.DB) {
			_ = db.Close() // makes no sense to handle this
		}(db)

		_, err := postgresengine.NewStoreFromSQLDB(db, options...)
		return err

	case typeSQLXDB:
		db := config.PostgresSQLXTestConfig()
		defer func(db *sqlx.DB) {
			_ = db.Close() // makes no sense to handle this
		}(db)

		_, err := postgresengine.NewStoreFromSQLX(db, options...)
		return err

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", engineTypeFromEnv()))
	}
}

// CleanUp truncates the books and readers tables for the given wrapper
func CleanUp(t testing.TB, wrapper Wrapper) {
	var err error

	switch e := wrapper.(type) {
	case *PGXPoolWrapper:
		_, err = e.pool.Exec(context.Background(), sqlTruncateTables)

	case *SQLDBWrapper:
		_, err = e.db.Exec(sqlTruncateTables)

	case *SQLXWrapper:
		_, err = e.db.Exec(sqlTruncateTables)

	default:
		panic(fmt.Sprintf("unsupported wrapper type: %T", e))
	}

	require.NoError(t, err, "error cleaning up the library tables")
}

// ForceBookState writes the lending columns of a book directly, bypassing the store.
// The CHECK constraint still applies, so this is how tests prove that the database rejects broken rows.
func ForceBookState(wrapper Wrapper, id int64, status string, borrowerPhone *string) error {
	const query = `UPDATE books SET status = $1, borrower_phone = $2 WHERE id = $3`

	var err error

	switch e := wrapper.(type) {
	case *PGXPoolWrapper:
		_, err = e.pool.Exec(context.Background(), query, status, borrowerPhone, id)

	case *SQLDBWrapper:
		_, err = e.db.Exec(query, status, borrowerPhone, id)

	case *SQLXWrapper:
		_, err = e.db.Exec(query, status, borrowerPhone, id)

	default:
		panic(fmt.Sprintf("unsupported wrapper type: %T", e))
	}

	return err
}

func engineTypeFromEnv() string {
	return strings.ToLower(os.Getenv("ADAPTER_TYPE"))
}
