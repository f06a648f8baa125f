package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInitProvider_Disabled(t *testing.T) {
	shutdown, err := InitProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSignalURL(t *testing.T) {
	assert.Equal(t, "http://collector:4318/v1/traces", signalURL("http://collector:4318", "traces"))
	assert.Equal(t, "http://collector:4318/v1/logs", signalURL("http://collector:4318/", "logs"))
}

func TestSampler(t *testing.T) {
	all := sdktrace.NewTracerProvider(sdktrace.WithSampler(Sampler(1)))
	_, span := all.Tracer("test").Start(context.Background(), "root")
	assert.True(t, span.SpanContext().IsSampled())
	span.End()

	none := sdktrace.NewTracerProvider(sdktrace.WithSampler(Sampler(0)))
	_, span = none.Tracer("test").Start(context.Background(), "root")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()
}

func TestTracer_NotNil(t *testing.T) {
	assert.NotNil(t, Tracer())
}
