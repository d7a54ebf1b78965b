package shell

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-desk-go/library"
)

const (
	// CommandHandlerDurationMetric tracks command handler execution duration.
	CommandHandlerDurationMetric = "commandhandler_handle_duration_seconds"

	// CommandHandlerCallsMetric tracks total command handler calls.
	CommandHandlerCallsMetric = "commandhandler_handle_calls_total"

	// CommandHandlerIdempotentMetric tracks commands that needed no state change.
	CommandHandlerIdempotentMetric = "commandhandler_idempotent_operations_total"

	// CommandHandlerLendingConflictMetric tracks borrow attempts on books that were already borrowed.
	CommandHandlerLendingConflictMetric = "commandhandler_lending_conflicts_total"

	// QueryHandlerDurationMetric tracks query handler execution duration.
	QueryHandlerDurationMetric = "queryhandler_handle_duration_seconds"

	// QueryHandlerCallsMetric tracks total query handler calls.
	QueryHandlerCallsMetric = "queryhandler_handle_calls_total"

	// QueryHandlerResultSizeMetric tracks the number of rows a query returned.
	QueryHandlerResultSizeMetric = "queryhandler_result_size"

	StatusSuccess         = "success"
	StatusError           = "error"
	StatusIdempotent      = "idempotent"
	StatusRejected        = "rejected"
	StatusLendingConflict = "lending_conflict"
	StatusCanceled        = "canceled"
	StatusTimeout         = "timeout"

	LogMsgCommandStarted   = "command handler started"
	LogMsgCommandCompleted = "command handler completed"
	LogMsgCommandRejected  = "command handler rejected"
	LogMsgCommandFailed    = "command handler failed"
	LogMsgQueryStarted     = "query handler started"
	LogMsgQueryCompleted   = "query handler completed"
	LogMsgQueryFailed      = "query handler failed"

	LogAttrCommandType     = "command_type"
	LogAttrQueryType       = "query_type"
	LogAttrStatus          = "status"
	LogAttrDurationMS      = "duration_ms"
	LogAttrBusinessOutcome = "business_outcome"
	LogAttrResultSize      = "result_size"
	LogAttrError           = "error"
)

// MetricsCollector interface for collecting handler metrics.
type MetricsCollector = library.MetricsCollector

// ContextualLogger interface for context-aware logging in handlers.
type ContextualLogger = library.ContextualLogger

// Logger interface for basic logging in handlers.
type Logger = library.Logger

// BuildCommandLabels creates standard metric labels for command handler operations.
func BuildCommandLabels(commandType, status string) map[string]string {
	return map[string]string{
		LogAttrCommandType: commandType,
		LogAttrStatus:      status,
	}
}

// BuildQueryLabels creates standard metric labels for query handler operations.
func BuildQueryLabels(queryType, status string) map[string]string {
	return map[string]string{
		LogAttrQueryType: queryType,
		LogAttrStatus:    status,
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// RecordCommandMetrics records duration and call count of a command, plus the status-specific counters.
func RecordCommandMetrics(collector MetricsCollector, commandType, status string, duration time.Duration) {
	if collector == nil {
		return
	}

	labels := BuildCommandLabels(commandType, status)
	collector.RecordDuration(CommandHandlerDurationMetric, duration, labels)
	collector.IncrementCounter(CommandHandlerCallsMetric, labels)

	switch status {
	case StatusIdempotent:
		collector.IncrementCounter(CommandHandlerIdempotentMetric, labels)
	case StatusLendingConflict:
		collector.IncrementCounter(CommandHandlerLendingConflictMetric, labels)
	}
}

// RecordQueryMetrics records duration and call count of a query, and the result size on success.
func RecordQueryMetrics(collector MetricsCollector, queryType, status string, duration time.Duration, resultSize int) {
	if collector == nil {
		return
	}

	labels := BuildQueryLabels(queryType, status)
	collector.RecordDuration(QueryHandlerDurationMetric, duration, labels)
	collector.IncrementCounter(QueryHandlerCallsMetric, labels)

	if status == StatusSuccess {
		collector.RecordValue(QueryHandlerResultSizeMetric, float64(resultSize), map[string]string{LogAttrQueryType: queryType})
	}
}

// LogCommandStart logs the beginning of command processing.
func LogCommandStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, commandType string) {
	if contextualLogger != nil {
		contextualLogger.DebugContext(ctx, LogMsgCommandStarted, LogAttrCommandType, commandType)
	} else if logger != nil {
		logger.Debug(LogMsgCommandStarted, LogAttrCommandType, commandType)
	}
}

// LogCommandSuccess logs successful command completion.
func LogCommandSuccess(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	commandType string,
	businessOutcome string,
	duration time.Duration,
) {
	args := []any{
		LogAttrCommandType, commandType,
		LogAttrBusinessOutcome, businessOutcome,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, LogMsgCommandCompleted, args...)
	} else if logger != nil {
		logger.Info(LogMsgCommandCompleted, args...)
	}
}

// LogCommandRejected logs a command refused by a business rule. This is an expected outcome, hence warn.
func LogCommandRejected(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	commandType string,
	status string,
	err error,
) {
	args := []any{
		LogAttrCommandType, commandType,
		LogAttrStatus, status,
		LogAttrError, err.Error(),
	}

	if contextualLogger != nil {
		contextualLogger.WarnContext(ctx, LogMsgCommandRejected, args...)
	} else if logger != nil {
		logger.Warn(LogMsgCommandRejected, args...)
	}
}

// LogCommandError logs command processing errors.
func LogCommandError(ctx context.Context, logger Logger, contextualLogger ContextualLogger, commandType string, err error) {
	args := []any{
		LogAttrCommandType, commandType,
		LogAttrError, err.Error(),
	}

	if contextualLogger != nil {
		contextualLogger.ErrorContext(ctx, LogMsgCommandFailed, args...)
	} else if logger != nil {
		logger.Error(LogMsgCommandFailed, args...)
	}
}

// LogQueryStart logs the beginning of query processing.
func LogQueryStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, queryType string) {
	if contextualLogger != nil {
		contextualLogger.DebugContext(ctx, LogMsgQueryStarted, LogAttrQueryType, queryType)
	} else if logger != nil {
		logger.Debug(LogMsgQueryStarted, LogAttrQueryType, queryType)
	}
}

// LogQuerySuccess logs successful query completion.
func LogQuerySuccess(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	queryType string,
	resultSize int,
	duration time.Duration,
) {
	args := []any{
		LogAttrQueryType, queryType,
		LogAttrResultSize, resultSize,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, LogMsgQueryCompleted, args...)
	} else if logger != nil {
		logger.Info(LogMsgQueryCompleted, args...)
	}
}

// LogQueryError logs query processing errors.
func LogQueryError(ctx context.Context, logger Logger, contextualLogger ContextualLogger, queryType string, err error) {
	args := []any{
		LogAttrQueryType, queryType,
		LogAttrError, err.Error(),
	}

	if contextualLogger != nil {
		contextualLogger.ErrorContext(ctx, LogMsgQueryFailed, args...)
	} else if logger != nil {
		logger.Error(LogMsgQueryFailed, args...)
	}
}

// ClassifyError maps an error to the status used in handler logs and metrics.
func ClassifyError(err error) string {
	switch {
	case IsCancellationError(err):
		return StatusCanceled
	case IsTimeoutError(err):
		return StatusTimeout
	case IsLendingConflictError(err):
		return StatusLendingConflict
	case IsRejectionError(err):
		return StatusRejected
	default:
		return StatusError
	}
}

// IsCancellationError checks if an error is due to context cancellation.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTimeoutError checks if an error is due to context deadline exceeded.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// IsLendingConflictError checks if a borrow lost against an earlier borrow of the same book.
func IsLendingConflictError(err error) bool {
	return errors.Is(err, library.ErrBookNotAvailable)
}

// IsRejectionError checks if an error is a business rejection rather than an infrastructure failure.
func IsRejectionError(err error) bool {
	return errors.Is(err, library.ErrValidation) ||
		errors.Is(err, library.ErrNotFound) ||
		errors.Is(err, library.ErrConflict)
}
