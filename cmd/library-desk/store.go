package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AntonStoeckl/library-desk-go/library"
	"github.com/AntonStoeckl/library-desk-go/library/inmemengine"
	"github.com/AntonStoeckl/library-desk-go/library/postgresengine"
	"github.com/AntonStoeckl/library-desk-go/service/api"
	"github.com/AntonStoeckl/library-desk-go/service/shared/shell/config"
)

const (
	adapterPGXPool = "pgx.pool"
	adapterSQLDB   = "sql.db"
	adapterSQLX    = "sqlx.db"
	adapterInmem   = "inmem"
)

// openStore connects the configured adapter and returns the store with a function releasing its connections.
func openStore(
	ctx context.Context,
	options *Options,
	log *slog.Logger,
	collector library.MetricsCollector,
) (api.Store, func(), error) {
	storeOptions := []postgresengine.Option{
		postgresengine.WithLogger(log),
		postgresengine.WithMetrics(collector),
	}

	var store *postgresengine.Store
	var closer func()

	switch options.Adapter {
	case adapterInmem:
		log.Warn("using the in-memory store, data is lost on exit")
		return inmemengine.NewStore(), func() {}, nil

	case adapterPGXPool:
		pool, err := config.NewPGXPool(ctx, options.DSN, options.PoolOptions)
		if err != nil {
			return nil, nil, err
		}
		closer = pool.Close

		if options.ReplicaDSN == "" {
			store, err = postgresengine.NewStoreFromPGXPool(pool, storeOptions...)
		} else {
			replica, replicaErr := config.NewPGXPool(ctx, options.ReplicaDSN, options.PoolOptions)
			if replicaErr != nil {
				pool.Close()
				return nil, nil, replicaErr
			}
			closer = func() { replica.Close(); pool.Close() }
			store, err = postgresengine.NewStoreFromPGXPoolAndReplica(pool, replica, storeOptions...)
		}
		if err != nil {
			closer()
			return nil, nil, err
		}

	case adapterSQLDB:
		db, err := config.NewSQLDB(ctx, options.DSN, options.PoolOptions)
		if err != nil {
			return nil, nil, err
		}
		closer = func() { _ = db.Close() }

		if store, err = postgresengine.NewStoreFromSQLDB(db, storeOptions...); err != nil {
			closer()
			return nil, nil, err
		}

	case adapterSQLX:
		db, err := config.NewSQLX(ctx, options.DSN, options.PoolOptions)
		if err != nil {
			return nil, nil, err
		}
		closer = func() { _ = db.Close() }

		if options.ReplicaDSN == "" {
			store, err = postgresengine.NewStoreFromSQLX(db, storeOptions...)
		} else {
			replica, replicaErr := config.NewSQLX(ctx, options.ReplicaDSN, options.PoolOptions)
			if replicaErr != nil {
				closer()
				return nil, nil, replicaErr
			}
			closer = func() { _ = replica.Close(); _ = db.Close() }
			store, err = postgresengine.NewStoreFromSQLXAndReplica(db, replica, storeOptions...)
		}
		if err != nil {
			closer()
			return nil, nil, err
		}

	default:
		return nil, nil, fmt.Errorf("unsupported adapter %q", options.Adapter)
	}

	if options.Migrate {
		if err := store.EnsureSchema(ctx); err != nil {
			closer()
			return nil, nil, err
		}
	}

	return store, closer, nil
}
