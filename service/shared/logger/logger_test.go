package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-desk-go/service/shared/logger"
)

func Test_RequestIDHandler_AddsTheIDFromTheContext(t *testing.T) {
	// setup
	var buf bytes.Buffer
	log := slog.New(logger.WithRequestIDs(slog.NewTextHandler(&buf, nil)))

	// act
	log.InfoContext(logger.WithRequestID(context.Background(), "req-42"), "hello")
	log.InfoContext(context.Background(), "no id")

	// assert
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "x-request-id=req-42")
	assert.NotContains(t, string(lines[1]), "x-request-id")
}

func Test_New_WritesJSONToFile(t *testing.T) {
	// setup
	file := filepath.Join(t.TempDir(), "desk.log")

	// act
	log := logger.New(&logger.Options{Level: "debug", File: file, Format: "json"})
	log.Debug("written")

	// assert
	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"written"`)
}

func Test_New_FallsBackOnInvalidOptions(t *testing.T) {
	// setup
	options := &logger.Options{Level: "loud", File: os.DevNull, Format: "yaml"}

	// act
	log := logger.New(options)

	// assert
	assert.NotNil(t, log)
	assert.Empty(t, options.Level)
}
