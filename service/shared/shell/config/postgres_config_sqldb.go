package config

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq" // postgres driver
)

// NewSQLDB opens and pings a *sql.DB on the lib/pq driver.
func NewSQLDB(ctx context.Context, dsn string, options PoolOptions) (*sql.DB, error) {
	if dsn == "" {
		return nil, ErrEmptyDSN
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(options.MaxConns)
	db.SetMaxIdleConns(options.MinConns)
	db.SetConnMaxLifetime(options.ConnMaxLifetime)
	db.SetConnMaxIdleTime(options.ConnMaxIdleTime)

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return nil, pingErr
	}

	return db, nil
}
