// Package telemetry wires the navigation spans into an OpenTelemetry SDK
// tracer provider: an OTLP exporter when one is configured, and an
// in-process record of recent transitions for the demo.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const defaultServiceName = "navdemo"

// Provider owns the SDK tracer provider.
type Provider struct {
	tp       *sdktrace.TracerProvider
	recent   *Recent
	exported bool
}

// Options configures NewProvider.
type Options struct {
	// MaxRecent bounds the in-process transition record (default 10).
	MaxRecent int
	// Exporter overrides the environment-driven OTLP exporter.
	Exporter sdktrace.SpanExporter
	Logger   *zap.Logger
}

// NewProvider builds a tracer provider that always feeds a Recent record and
// batches spans to OTLP when OTEL_EXPORTER_OTLP_ENDPOINT is set or an
// exporter is supplied.
func NewProvider(ctx context.Context, opts Options) (*Provider, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	exporter := opts.Exporter
	if exporter == nil {
		var err error
		if exporter, err = NewOTLPExporter(ctx); err != nil {
			return nil, err
		}
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = defaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	recent := NewRecent(opts.MaxRecent)
	spOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(recent),
	}
	if exporter != nil {
		spOpts = append(spOpts, sdktrace.WithBatcher(exporter))
		log.Debug("Exporting navigation spans", zap.String("service", serviceName))
	}

	return &Provider{
		tp:       sdktrace.NewTracerProvider(spOpts...),
		recent:   recent,
		exported: exporter != nil,
	}, nil
}

// TracerProvider returns the provider to hand to the controller.
func (p *Provider) TracerProvider() trace.TracerProvider {
	return p.tp
}

// Recent returns the in-process transition record.
func (p *Provider) Recent() *Recent {
	return p.recent
}

// Exporting reports whether spans leave the process.
func (p *Provider) Exporting() bool {
	return p.exported
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.tp.Shutdown(ctx)
}
