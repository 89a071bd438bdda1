// Package telemetry provides OpenTelemetry tracing and metrics, exported to
// Honeycomb over OTLP/HTTP.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "blockfall"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Settings configures the exporter.
type Settings struct {
	APIKey    string // Honeycomb team key; empty leaves OTEL_* env vars in charge
	Dataset   string // Honeycomb dataset, defaults to the service name
	SessionID string // Attached to every span as session.id
}

// Setup initializes OpenTelemetry with OTLP HTTP exporters for traces and
// metrics. When Settings.APIKey is set the exporters target Honeycomb
// directly, otherwise they fall back to the standard OTEL_EXPORTER_OTLP_*
// variables.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, s Settings) (shutdown func(context.Context) error, err error) {
	res, err := newResource(ctx, s.SessionID)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracehttp.New(ctx, traceExporterOptions(s)...)
	if err != nil {
		return nil, fmt.Errorf("create otlp trace exporter: %w", err)
	}
	metricExporter, err := otlpmetrichttp.New(ctx, metricExporterOptions(s)...)
	if err != nil {
		return nil, fmt.Errorf("create otlp metric exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	mp := newMeterProvider(res, sdkmetric.NewPeriodicReader(metricExporter))

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}

func newResource(ctx context.Context, sessionID string) (*resource.Resource, error) {
	// Own resource rather than merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
			attribute.String("session.id", sessionID),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}
	return res, nil
}

func newMeterProvider(res *resource.Resource, reader sdkmetric.Reader) *sdkmetric.MeterProvider {
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
}

// honeycombHeaders returns the auth headers for s, or nil without a key.
func honeycombHeaders(s Settings) map[string]string {
	if s.APIKey == "" {
		return nil
	}
	dataset := s.Dataset
	if dataset == "" {
		dataset = serviceName
	}
	return map[string]string{
		"x-honeycomb-team":    s.APIKey,
		"x-honeycomb-dataset": dataset,
	}
}

func traceExporterOptions(s Settings) []otlptracehttp.Option {
	headers := honeycombHeaders(s)
	if headers == nil {
		return nil
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpointURL(honeycombEndpoint + "/v1/traces"),
		otlptracehttp.WithHeaders(headers),
	}
}

func metricExporterOptions(s Settings) []otlpmetrichttp.Option {
	headers := honeycombHeaders(s)
	if headers == nil {
		return nil
	}
	return []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpointURL(honeycombEndpoint + "/v1/metrics"),
		otlpmetrichttp.WithHeaders(headers),
	}
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// Meter returns a named meter for the given component. Without a registered
// meter provider the instruments it creates are no-ops.
func Meter(name string) metric.Meter {
	return otel.GetMeterProvider().Meter(serviceName + "/" + name)
}

// NoopMeter returns a no-op meter for use when telemetry is disabled.
func NoopMeter() metric.Meter {
	return metricnoop.NewMeterProvider().Meter(serviceName + "/noop")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
