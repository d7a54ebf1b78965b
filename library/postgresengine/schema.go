package postgresengine

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const operationEnsureSchema = "ensure_schema"

// EnsureSchema creates the readers and books tables if they do not exist yet.
//
// The books table enforces the lending invariant with a CHECK constraint, so even a write that
// bypasses this store cannot leave a book BORROWED without a borrower and a borrow date.
func (s *Store) EnsureSchema(ctx context.Context) error {
	start := time.Now()

	for _, statement := range s.schemaStatements() {
		if _, err := s.executeStatement(ctx, operationEnsureSchema, statement, nil); err != nil {
			return s.failed(ctx, operationEnsureSchema, err, time.Since(start))
		}
	}

	s.succeeded(ctx, operationEnsureSchema, time.Since(start))

	return nil
}

func (s *Store) schemaStatements() []string {
	readers := quoteIdentifier(s.readersTableName)
	books := quoteIdentifier(s.booksTableName)
	titleIndex := quoteIdentifier(s.booksTableName + "_title_idx")
	lastNameIndex := quoteIdentifier(s.readersTableName + "_last_name_idx")

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	phone             TEXT PRIMARY KEY,
	first_name        TEXT NOT NULL,
	last_name         TEXT NOT NULL,
	birth_date        DATE NOT NULL,
	registration_date DATE NOT NULL DEFAULT CURRENT_DATE
)`, readers),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	title            TEXT NOT NULL,
	author           TEXT NOT NULL,
	cover_type       TEXT NOT NULL DEFAULT '',
	publication_year INTEGER NOT NULL DEFAULT 0,
	genre            TEXT NOT NULL DEFAULT '',
	page_count       INTEGER NOT NULL DEFAULT 0,
	condition_state  TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'AVAILABLE' CHECK (status IN ('AVAILABLE', 'BORROWED')),
	borrowed_date    DATE,
	borrower_phone   TEXT REFERENCES %s (phone),
	CONSTRAINT lending_state CHECK (
		((status = 'BORROWED') = (borrower_phone IS NOT NULL))
		AND ((borrower_phone IS NULL) = (borrowed_date IS NULL))
	)
)`, books, readers),

		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (title)`, titleIndex, books),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (last_name)`, lastNameIndex, readers),
	}
}

func quoteIdentifier(name string) string {
	return pgx.Identifier{name}.Sanitize()
}
