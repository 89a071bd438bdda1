package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestExporterOptions(t *testing.T) {
	assert.Empty(t, traceExporterOptions(Settings{}), "no key leaves env vars in charge")
	assert.Empty(t, metricExporterOptions(Settings{}))
	assert.Len(t, traceExporterOptions(Settings{APIKey: "abc"}), 2)
	assert.Len(t, metricExporterOptions(Settings{APIKey: "abc"}), 2)
}

func TestHoneycombHeaders(t *testing.T) {
	assert.Nil(t, honeycombHeaders(Settings{Dataset: "ignored"}))

	headers := honeycombHeaders(Settings{APIKey: "abc"})
	assert.Equal(t, "abc", headers["x-honeycomb-team"])
	assert.Equal(t, serviceName, headers["x-honeycomb-dataset"])

	headers = honeycombHeaders(Settings{APIKey: "abc", Dataset: "games"})
	assert.Equal(t, "games", headers["x-honeycomb-dataset"])
}

func TestSetupRegistersProviders(t *testing.T) {
	t.Cleanup(func() {
		otel.SetTracerProvider(tracenoop.NewTracerProvider())
		otel.SetMeterProvider(metricnoop.NewMeterProvider())
	})

	shutdown, err := Setup(context.Background(), Settings{SessionID: "test"})
	require.NoError(t, err)

	assert.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())
	assert.IsType(t, &sdkmetric.MeterProvider{}, otel.GetMeterProvider())

	// Nothing listens locally, so the final export may fail
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = shutdown(ctx)
}

func TestMeterProviderRecordsCounters(t *testing.T) {
	ctx := context.Background()
	res, err := newResource(ctx, "test")
	require.NoError(t, err)

	reader := sdkmetric.NewManualReader()
	mp := newMeterProvider(res, reader)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	counter, err := mp.Meter(serviceName + "/test").Int64Counter("blockfall.lines_cleared")
	require.NoError(t, err)
	counter.Add(ctx, 3)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	sum, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(3), sum.DataPoints[0].Value)

	session, ok := rm.Resource.Set().Value("session.id")
	require.True(t, ok)
	assert.Equal(t, "test", session.AsString())
}

func TestNoopMeter(t *testing.T) {
	counter, err := NoopMeter().Int64Counter("test.counter")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)
}
