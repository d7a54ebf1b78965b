// Package adapters provides database adapter implementations for the PostgreSQL store.
//
// This package implements the adapter pattern to support multiple PostgreSQL database libraries:
// pgx.Pool, sql.DB, and sqlx.DB. All adapters provide equivalent functionality through
// a common DBAdapter interface, so the store works with any supported connection type.
//
// Queries are always executed with positional arguments; SQL text never contains caller values.
package adapters
