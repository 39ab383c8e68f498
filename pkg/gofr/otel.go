package gofr

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/rqchallenge/employees/pkg/gofr/config"
)

var errTracerConfig = errors.New("TRACE_EXPORTER and TRACER_URL must be set together")

type exporterFactory func(url string, headers map[string]string) (sdktrace.SpanExporter, error)

// jaeger accepts OTLP over gRPC.
var exporterFactories = map[string]exporterFactory{
	"otlp":   otlpExporter,
	"jaeger": otlpExporter,
	"zipkin": zipkinExporter,
}

// initTracer installs the global tracer provider and W3C propagators. Spans are only exported when
// TRACE_EXPORTER and TRACER_URL are configured.
func (a *App) initTracer() {
	ratio := config.Fraction(a.Config, a.container, "TRACER_RATIO", 1)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(resource.NewWithAttributes(semconv.SchemaURL,
			semconv.ServiceNameKey.String(a.container.GetAppName()),
			semconv.ServiceVersionKey.String(a.container.GetAppVersion()))),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) { a.container.Error(err) }))

	a.tracerProvider = tp

	exporter, err := a.spanExporter(a.Config.Get("TRACE_EXPORTER"), a.Config.Get("TRACER_URL"))

	switch {
	case err != nil:
		a.container.Errorf("tracing disabled: %v", err)
	case exporter != nil:
		tp.RegisterSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter))
	}
}

// spanExporter returns a nil exporter and no error when tracing is not configured at all.
func (a *App) spanExporter(name, url string) (sdktrace.SpanExporter, error) {
	if name == "" && url == "" {
		a.container.Debug("tracing is disabled, as configs are not provided")

		return nil, nil
	}

	if name == "" || url == "" {
		return nil, errTracerConfig
	}

	name = strings.ToLower(name)

	factory, ok := exporterFactories[name]
	if !ok {
		return nil, errors.Errorf("unsupported TRACE_EXPORTER: %s", name)
	}

	var headers map[string]string
	if auth := a.Config.Get("TRACER_AUTH_KEY"); auth != "" {
		headers = map[string]string{"Authorization": auth}
	}

	a.container.Infof("Exporting traces to %s at %s", name, url)

	return factory(url, headers)
}

func otlpExporter(url string, headers map[string]string) (sdktrace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithInsecure(), otlptracegrpc.WithEndpoint(url)}
	if headers != nil {
		opts = append(opts, otlptracegrpc.WithHeaders(headers))
	}

	return otlptracegrpc.New(context.Background(), opts...)
}

func zipkinExporter(url string, headers map[string]string) (sdktrace.SpanExporter, error) {
	var opts []zipkin.Option
	if headers != nil {
		opts = append(opts, zipkin.WithHeaders(headers))
	}

	return zipkin.New(url, opts...)
}
