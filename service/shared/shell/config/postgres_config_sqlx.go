package config

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// NewSQLX opens and pings a *sqlx.DB on the lib/pq driver.
func NewSQLX(ctx context.Context, dsn string, options PoolOptions) (*sqlx.DB, error) {
	if dsn == "" {
		return nil, ErrEmptyDSN
	}

	db, err := sqlx.Open("postgres", dsn)
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
