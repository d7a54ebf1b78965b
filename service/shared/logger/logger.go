// Package logger builds the process logger from CLI options and carries request ids through contexts.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options configure the process logger.
type Options struct {
	Level  string `doc:"log from debug, info, warn or error"`
	File   string `doc:"append logs to file"`
	Format string `doc:"format logs as text or json"         default:"text"`
}

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return nil, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// New returns a logger for the options. Invalid options fall back to defaults and log a warning.
// Every record logged with a context gets the request id found in it.
func New(options *Options) *slog.Logger {
	level, ok := level(options.Level)
	if !ok {
		options.Level = ""
		logger := New(options)
		logger.Warn("could not parse logger level")
		return logger
	}
	opts := slog.HandlerOptions{Level: level}

	var output io.Writer
	switch options.File {
	case "", "-":
		output = os.Stdout
	case os.DevNull:
		return slog.New(slog.DiscardHandler)
	default:
		var err error
		output, err = os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			options.File = ""
			logger := New(options)
			logger.Warn("could not open logger file", "err", err)
			return logger
		}
	}

	switch strings.ToLower(options.Format) {
	case "json":
		return slog.New(WithRequestIDs(slog.NewJSONHandler(output, &opts)))
	case "text":
		return slog.New(WithRequestIDs(slog.NewTextHandler(output, &opts)))
	default:
		options.Format = "text"
		logger := New(options)
		logger.Warn("could not parse logger format")
		return logger
	}
}

type requestIDKey struct{}

// RequestIDAttr is the attribute key under which request ids are logged.
const RequestIDAttr = "x-request-id"

// WithRequestID returns a context carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id carried by ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithRequestIDs wraps h so that records logged with a request context carry its request id.
func WithRequestIDs(h slog.Handler) slog.Handler {
	return requestIDHandler{Handler: h}
}

type requestIDHandler struct {
	slog.Handler
}

func (h requestIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RequestID(ctx); id != "" {
		r.AddAttrs(slog.String(RequestIDAttr, id))
	}

	return h.Handler.Handle(ctx, r)
}

func (h requestIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return requestIDHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h requestIDHandler) WithGroup(name string) slog.Handler {
	return requestIDHandler{Handler: h.Handler.WithGroup(name)}
}
