// Package config provides PostgreSQL database configuration for library store testing.
//
// It contains factory functions for the three supported adapters (pgx.Pool, sql.DB, sqlx.DB),
// all pointed at the test database. The DSN can be overridden with LIBRARY_TEST_DSN.
package config
