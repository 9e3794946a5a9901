package internal

import (
	"fmt"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/avelinos/tasktrack-api/internal/envvar"
)

// NewOTExporter instantiates the OpenTelemetry exporters using configuration
// defined in environment variables. The returned handler serves the Prometheus
// scrape endpoint.
func NewOTExporter(conf *envvar.Configuration, serviceName string) (http.Handler, error) {
	registry := prom.NewRegistry()

	promExporter, err := prometheus.New(
		prometheus.WithRegisterer(registry),
		prometheus.WithoutUnits(),
	)
	if err != nil {
		return nil, fmt.Errorf("prometheus.New: %w", err)
	}

	meterProvider := metric.NewMeterProvider(
		metric.WithReader(promExporter),
	)

	otel.SetMeterProvider(meterProvider)

	jaegerEndpoint, _ := conf.Get("JAEGER_ENDPOINT")

	jaegerExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
	if err != nil {
		return nil, fmt.Errorf("jaeger.New: %w", err)
	}

	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(jaegerExporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)

	otel.SetTracerProvider(traceProvider)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), nil
}
