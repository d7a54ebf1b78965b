package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-desk-go/service/shared/logger"
)

// RequestIDHeader carries the request id between desk clients and the server.
const RequestIDHeader = "X-Request-Id"

// requestIDMiddleware puts the caller's request id, or a fresh one, into the context and echoes it in the response.
func requestIDMiddleware(ctx huma.Context, next func(huma.Context)) {
	id := ctx.Header(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	ctx.SetHeader(RequestIDHeader, id)
	next(huma.WithContext(ctx, logger.WithRequestID(ctx.Context(), id)))
}

// ctxlog is a [context.Context] key and acts as a virtual package for operations related to it.
type ctxlog struct{}

// loggerMiddleware returns a middleware that sets a [slog.Logger] in
// the [context.Context] and logs the request after it has terminated.
func (key ctxlog) loggerMiddleware(parent *slog.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		log := parent.With(logger.RequestIDAttr, logger.RequestID(ctx.Context()))

		start := time.Now()
		next(huma.WithValue(ctx, key, log.WithGroup("op").With("id", ctx.Operation().OperationID)))

		log.LogAttrs(context.Background(), slog.LevelInfo,
			joinSpace(ctx.Operation().Method, ctx.Operation().Path, ctx.Version().Proto),
			slog.String("from", ctx.RemoteAddr()),
			slog.String("ua", ctx.Header("User-Agent")),
			slog.Int("status", ctx.Status()),
			slog.Duration("dur", time.Since(start)),
		)
	}
}

// recoverMiddleware returns a middleware that recovers and logs the value from panic.
// Also sets status response to [http.StatusInternalServerError].
func (key ctxlog) recoverMiddleware(fallback *slog.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		defer func() {
			v := recover()
			if v != nil {
				log, ok := ctx.Context().Value(key).(*slog.Logger)
				if !ok {
					log = fallback
				}
				log.LogAttrs(context.Background(), slog.LevelError, "panic occurred", slog.Any("recovered", v))
				ctx.SetStatus(http.StatusInternalServerError)
			}
		}()
		next(ctx)
	}
}

// errorHandler returns a function that gets the [slog.Logger] from [context.Context] and logs the error.
func (key ctxlog) errorHandler(fallback *slog.Logger) func(context.Context, error) {
	return func(ctx context.Context, err error) {
		level := slog.LevelError
		attrs := []slog.Attr{slog.Any("err", err)}

		var statusErr huma.StatusError
		if errors.As(err, &statusErr) {
			if statusErr.GetStatus() < http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			attrs = append(attrs, slog.Int("status", statusErr.GetStatus()))
		}

		log, ok := ctx.Value(key).(*slog.Logger)
		if !ok {
			log = fallback
		}
		log.LogAttrs(context.Background(), level, "error occurred", attrs...)
	}
}

// joinSpace is [strings.Join] with space as separator.
func joinSpace(elems ...string) string { return strings.Join(elems, ` `) }
