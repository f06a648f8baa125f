package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, parseLevel(input))
		})
	}
}

func TestInit_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Init(Options{Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))) })

	buf.Reset()
	l.Debug("hello", "k", "v")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "v", record["k"])
}

func TestTraceContextHandler_AddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewTraceContextHandler(slog.NewJSONHandler(&buf, nil)))

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	l.InfoContext(ctx, "traced")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, span.SpanContext().TraceID().String(), record["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), record["span_id"])
	assert.Equal(t, true, record["trace_sampled"])
}

func TestTraceContextHandler_NoSpan(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewTraceContextHandler(slog.NewJSONHandler(&buf, nil)))
	l.InfoContext(context.Background(), "plain")
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	l := slog.New(h).With("component", "test")

	l.Info("info only")
	assert.Contains(t, a.String(), "info only")
	assert.Empty(t, b.String())

	l.Error("both")
	assert.Contains(t, a.String(), "both")
	assert.Contains(t, b.String(), `"component":"test"`)
}

func TestContextLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	cl := NewContextLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx := WithCollection(WithSyncRun(context.Background(), "run-1"), "news")
	cl.WithContext(ctx).Info("pass")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "run-1", record["sync_run_id"])
	assert.Equal(t, "news", record["collection"])
	assert.NotContains(t, record, "request_id")
}
