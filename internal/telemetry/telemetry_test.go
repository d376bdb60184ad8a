package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/pkordes/trip-builder/internal/telemetry"
)

func TestSetup_emptyEndpointIsNoop(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), "", "trip-builder")

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewProvider_recordsSpansWithServiceName(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := telemetry.NewProvider(
		sdktrace.WithSpanProcessor(rec),
		sdktrace.WithResource(telemetry.Resource("trips-test")),
	)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "op", spans[0].Name())
	assert.Contains(t, spans[0].Resource().Attributes(), attribute.String("service.name", "trips-test"))
}
