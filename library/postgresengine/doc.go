// Package postgresengine provides a PostgreSQL implementation of the library desk store.
//
// The store keeps books and readers in two tables related by the borrower phone. It supports
// multiple database adapters (pgx, sql.DB, sqlx) and builds every statement with goqu in
// prepared mode, so caller values are always sent as positional arguments.
//
// Borrowing is a single conditional UPDATE that only matches a book whose status is still
// AVAILABLE. Concurrent borrow requests for the same book therefore race inside PostgreSQL's
// row locking, and exactly one of them affects a row. No application-level lock is held.
//
// Usage examples:
//
//	// Basic usage
//	db, _ := pgxpool.New(context.Background(), dsn)
//	store, _ := postgresengine.NewStoreFromPGXPool(db)
//
//	// With custom table names, logging and metrics
//	store, _ := postgresengine.NewStoreFromPGXPool(
//		db,
//		postgresengine.WithBooksTableName("lib_books"),
//		postgresengine.WithLogger(slogLogger),
//		postgresengine.WithMetrics(collector),
//	)
//
//	_ = store.EnsureSchema(ctx)
//	err := store.LendBook(ctx, bookID, "79001234567")
package postgresengine
