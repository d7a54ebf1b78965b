package postgresengine

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/AntonStoeckl/library-desk-go/library"
)

const (
	operationListBooks      = "list_books"
	operationAddBook        = "add_book"
	operationRemoveBook     = "remove_book"
	operationListReaders    = "list_readers"
	operationRegisterReader = "register_reader"
	operationReaderExists   = "reader_exists"
	operationLendBook       = "lend_book"
	operationReturnBook     = "return_book"
)

const (
	metricOperationDuration = "library_store_operation_duration_seconds"
	metricDatabaseErrors    = "library_store_errors_total"
	metricLendingConflicts  = "library_store_lending_conflicts_total"

	labelOperation = "operation"
	labelStatus    = "status"
	labelErrorKind = "error_kind"

	statusSuccess  = "success"
	statusRejected = "rejected"
	statusError    = "error"
)

const (
	logMsgSQLExecuted        = "library.sql: executed "
	logMsgOperation          = "library.store: "
	logMsgOperationRejected  = "library.store: rejected "
	logMsgOperationFailed    = "library.store: failed "
	logMsgLendingConflict    = "library.store: lending conflict, book already borrowed"
	logMsgScanRowFailed      = "library.store: failed to scan database row"
	logMsgDBQueryFailed      = "library.store: database query failed"
	logMsgDBExecFailed       = "library.store: database exec failed"
	logMsgRowsAffectedFailed = "library.store: failed to get rows affected"
	logMsgCloseRowsFailed    = "library.store: failed to close database rows"

	logAttrDurationMS   = "duration_ms"
	logAttrQuery        = "query"
	logAttrError        = "error"
	logAttrRowCount     = "row_count"
	logAttrRowsAffected = "rows_affected"
	logAttrBookID       = "book_id"
	logAttrPhone        = "phone"
)

// succeeded logs a finished operation at info level and records its duration.
func (s *Store) succeeded(ctx context.Context, operation string, duration time.Duration, args ...any) {
	s.logOperation(ctx, logMsgOperation+operation, append([]any{logAttrDurationMS, toMilliseconds(duration)}, args...)...)
	s.recordDuration(operation, statusSuccess, duration)
}

// rejected handles a domain rejection like a missing book or a duplicate reader.
// It is logged at info level because the store itself works as expected; the error is returned unchanged.
func (s *Store) rejected(ctx context.Context, operation string, err error, duration time.Duration, args ...any) error {
	allArgs := []any{logAttrError, err.Error(), logAttrDurationMS, toMilliseconds(duration)}
	allArgs = append(allArgs, args...)

	s.logOperation(ctx, logMsgOperationRejected+operation, allArgs...)
	s.recordDuration(operation, statusRejected, duration)

	return err
}

// failed handles an infrastructure failure: it records the error metrics and returns the error unchanged.
// The detailed error log has already been written where the failure happened.
func (s *Store) failed(ctx context.Context, operation string, err error, duration time.Duration) error {
	if s.logger != nil {
		if contextual, ok := s.logger.(library.ContextualLogger); ok {
			contextual.WarnContext(ctx, logMsgOperationFailed+operation, logAttrError, err.Error(), logAttrDurationMS, toMilliseconds(duration))
		}
	}

	s.recordDuration(operation, statusError, duration)

	if s.metricsCollector != nil {
		s.metricsCollector.IncrementCounter(metricDatabaseErrors, map[string]string{
			labelOperation: operation,
			labelErrorKind: errorKind(err),
		})
	}

	return err
}

// recordLendingConflict counts a borrow attempt that lost against an earlier borrow of the same book.
func (s *Store) recordLendingConflict(ctx context.Context, id library.BookID) {
	if s.logger != nil {
		if contextual, ok := s.logger.(library.ContextualLogger); ok {
			contextual.InfoContext(ctx, logMsgLendingConflict, logAttrBookID, id)
		} else {
			s.logger.Info(logMsgLendingConflict, logAttrBookID, id)
		}
	}

	if s.metricsCollector != nil {
		s.metricsCollector.IncrementCounter(metricLendingConflicts, map[string]string{
			labelOperation: operationLendBook,
		})
	}
}

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (s *Store) logQueryWithDuration(sqlQuery string, operation string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+operation, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs at info level, with the context if the logger supports it.
func (s *Store) logOperation(ctx context.Context, message string, args ...any) {
	if s.logger == nil {
		return
	}

	if contextual, ok := s.logger.(library.ContextualLogger); ok {
		contextual.InfoContext(ctx, message, args...)
		return
	}

	s.logger.Info(message, args...)
}

// logError logs error information at the error level if the logger is configured.
func (s *Store) logError(message string, err error, args ...any) {
	if s.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		s.logger.Error(message, allArgs...)
	}
}

func (s *Store) recordDuration(operation, status string, duration time.Duration) {
	if s.metricsCollector != nil {
		s.metricsCollector.RecordDuration(metricOperationDuration, duration, map[string]string{
			labelOperation: operation,
			labelStatus:    status,
		})
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, library.ErrBuildingQueryFailed):
		return "build_query"
	case errors.Is(err, library.ErrScanningDBRowFailed):
		return "scan"
	case errors.Is(err, library.ErrGettingRowsAffectedFailed):
		return "rows_affected"
	case errors.Is(err, library.ErrExecutingFailed):
		return "exec"
	case errors.Is(err, library.ErrQueryingFailed):
		return "query"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "other"
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
