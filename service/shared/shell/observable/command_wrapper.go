package observable

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-desk-go/service/shared/shell"
)

// CommandWrapper provides observability instrumentation for any command handler.
// It wraps a core command handler and adds metrics and logging while delegating the business logic.
type CommandWrapper[C shell.Command] struct {
	coreHandler      shell.CommandHandler[C]
	commandType      string
	metricsCollector shell.MetricsCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewCommandWrapper creates a new observable wrapper around the core command handler.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CommandHandler[C],
	opts ...CommandOption[C],
) (*CommandWrapper[C], error) {
	var zeroCommand C

	wrapper := &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle executes the wrapped handler and records its outcome.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	commandStart := time.Now()
	shell.LogCommandStart(ctx, w.logger, w.contextualLogger, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	duration := time.Since(commandStart)

	if err != nil {
		w.recordCommandError(ctx, err, duration)
		return result, err
	}

	outcome := shell.StatusSuccess
	if result.Idempotent {
		outcome = shell.StatusIdempotent
	}

	shell.RecordCommandMetrics(w.metricsCollector, w.commandType, outcome, duration)
	shell.LogCommandSuccess(ctx, w.logger, w.contextualLogger, w.commandType, outcome, duration)

	return result, nil
}

// CommandOption defines a functional option for configuring CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C]) error

// WithCommandMetrics sets the metrics collector for the CommandWrapper.
func WithCommandMetrics[C shell.Command](collector shell.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithCommandContextualLogging sets the contextual logger for the CommandWrapper.
func WithCommandContextualLogging[C shell.Command](logger shell.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithCommandLogging sets the basic logger for the CommandWrapper.
func WithCommandLogging[C shell.Command](logger shell.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.logger = logger
		return nil
	}
}

// recordCommandError records a failed command. Business rejections are logged at warn level,
// everything else at error level.
func (w *CommandWrapper[C]) recordCommandError(ctx context.Context, err error, duration time.Duration) {
	status := shell.ClassifyError(err)
	shell.RecordCommandMetrics(w.metricsCollector, w.commandType, status, duration)

	switch status {
	case shell.StatusRejected, shell.StatusLendingConflict:
		shell.LogCommandRejected(ctx, w.logger, w.contextualLogger, w.commandType, status, err)
	default:
		shell.LogCommandError(ctx, w.logger, w.contextualLogger, w.commandType, err)
	}
}
