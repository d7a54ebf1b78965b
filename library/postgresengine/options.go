package postgresengine

import (
	"github.com/AntonStoeckl/library-desk-go/library"
)

// Option defines a functional option for configuring Store.
type Option func(*Store) error

// WithBooksTableName sets the books table name for the Store.
func WithBooksTableName(tableName string) Option {
	return func(s *Store) error {
		if tableName == "" {
			return library.ErrEmptyTableName
		}

		s.booksTableName = tableName

		return nil
	}
}

// WithReadersTableName sets the readers table name for the Store.
func WithReadersTableName(tableName string) Option {
	return func(s *Store) error {
		if tableName == "" {
			return library.ErrEmptyTableName
		}

		s.readersTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Store.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Operations with row counts and durations, lending conflicts (production-safe)
// Warn level: Non-critical issues like cleanup failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger library.Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Store.
// It receives operation durations, database errors, and lending conflicts.
func WithMetrics(collector library.MetricsCollector) Option {
	return func(s *Store) error {
		s.metricsCollector = collector
		return nil
	}
}
