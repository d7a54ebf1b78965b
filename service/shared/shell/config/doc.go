// Package config provides database connection factories for the library service.
//
// It creates pgx pools, sql.DB or sqlx.DB handles (both on lib/pq) from a DSN and pool
// options, and pings the database before handing the connection out.
package config
