package config

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPGXPool creates and pings a pgxpool.Pool for the given DSN.
func NewPGXPool(ctx context.Context, dsn string, options PoolOptions) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, ErrEmptyDSN
	}

	dbConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Join(errors.New("config: parsing pgx pool config failed"), err)
	}

	dbConfig.MaxConns = int32(options.MaxConns) //nolint:gosec // small, operator supplied
	dbConfig.MinConns = int32(options.MinConns) //nolint:gosec // small, operator supplied
	dbConfig.MaxConnLifetime = options.ConnMaxLifetime
	dbConfig.MaxConnIdleTime = options.ConnMaxIdleTime
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, err
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, pingErr
	}

	return pool, nil
}
