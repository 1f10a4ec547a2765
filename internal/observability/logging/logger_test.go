package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"newsblog/internal/handler/http/requestid"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestNewLogger_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept", slog.Int64("source_id", 3))
	m := decode(t, &buf)
	assert.Equal(t, "kept", m["msg"])
	assert.Equal(t, "WARN", m["level"])
	assert.Equal(t, float64(3), m["source_id"])
	assert.Contains(t, m, "source")
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&buf, "info")

	ctx := requestid.WithRequestID(context.Background(), "req-123")
	WithRequestID(ctx, base).Info("hello")

	m := decode(t, &buf)
	assert.Equal(t, "req-123", m["request_id"])
	assert.NotContains(t, m, "trace_id")
}

func TestWithRequestID_TraceID(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&buf, "info")

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	WithRequestID(ctx, base).Info("traced")

	m := decode(t, &buf)
	assert.Equal(t, span.SpanContext().TraceID().String(), m["trace_id"])
	assert.NotContains(t, m, "request_id")
}

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	custom := NewLogger(&bytes.Buffer{}, "debug")
	ctx := WithLogger(context.Background(), custom)
	assert.Same(t, custom, FromContext(ctx))
}
