package telemetry

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Trace exporters selectable with AI_TOOLS_TRACES.
const (
	ExporterNone   = "none"
	ExporterStderr = "stderr"
)

// NewTracerProvider builds an SDK tracer provider tagged with service. The
// stderr exporter writes one JSON document per ended span to out.
func NewTracerProvider(service, exporter string, out io.Writer) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", service))),
	}

	switch strings.ToLower(strings.TrimSpace(exporter)) {
	case "", ExporterNone:
	case ExporterStderr:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(out))
		if err != nil {
			return nil, fmt.Errorf("create trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithSyncer(exp))
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", exporter)
	}

	return sdktrace.NewTracerProvider(opts...), nil
}

// Install sets provider as the global tracer provider and returns a
// shutdown func that flushes it.
func Install(provider *sdktrace.TracerProvider) func(context.Context) error {
	otel.SetTracerProvider(provider)
	return provider.Shutdown
}
