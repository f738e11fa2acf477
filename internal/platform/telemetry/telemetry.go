// Package telemetry sets up the OpenTelemetry tracer and meter providers and
// the instruments the gateway records into.
//
//	tp, err := telemetry.InitTracer(ctx, "continuum", telemetry.ExporterOTLP, "http://collector:4318")
//	mp, err := telemetry.InitMeter(ctx, "continuum", telemetry.ExporterOTLP, "http://collector:4318")
//	metrics, err := telemetry.NewMetrics(mp, "continuum")
//
// Both providers are installed globally and must be shut down on exit.
// ExporterStdout writes to stdout and suits local runs.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ErrMissingEndpoint is returned when ExporterOTLP is chosen without an
// endpoint.
var ErrMissingEndpoint = errors.New("otlp exporter requires an endpoint")

// Metric and span attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrErrorKind   = attribute.Key("error.kind")
)

// Metrics are the instruments shared across the gateway. Server metrics are
// recorded per route by the HTTP middleware, client metrics per upstream by
// httpclient. UpstreamErrorTotal counts classified upstream failures per peer
// service, labelled no_response or bad_status.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	UpstreamErrorTotal    metric.Int64Counter
}

// InitTracer installs a global TracerProvider exporting through exporter and
// the W3C trace-context and baggage propagators.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var exp sdktrace.SpanExporter
	switch exporter {
	case ExporterOTLP:
		host, insecure, perr := otlpTarget(endpoint)
		if perr != nil {
			return nil, perr
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exp, err = otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		err = fmt.Errorf("unsupported trace exporter %q", exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a global MeterProvider with a periodic reader over
// exporter.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var exp sdkmetric.Exporter
	switch exporter {
	case ExporterOTLP:
		host, insecure, perr := otlpTarget(endpoint)
		if perr != nil {
			return nil, perr
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exp, err = otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		exp, err = stdoutmetric.New()
	default:
		err = fmt.Errorf("unsupported metric exporter %q", exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics registers the gateway instruments on a meter scoped to
// serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}

	var errs []error
	histogram := func(dst *metric.Float64Histogram, name, desc string) {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		*dst = h
	}
	counter := func(dst *metric.Int64Counter, name, desc, unit string) {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		*dst = c
	}

	histogram(&m.ServerRequestDuration, "http.server.request.duration", "Duration of gateway requests")
	counter(&m.ServerRequestTotal, "http.server.request.total", "Gateway requests served", "{request}")
	histogram(&m.ClientRequestDuration, "http.client.request.duration", "Duration of upstream calls")
	counter(&m.ClientRequestTotal, "http.client.request.total", "Upstream calls made", "{request}")
	counter(&m.UpstreamErrorTotal, "continuum.upstream.errors", "Failed upstream calls by failure kind", "{error}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}

// otlpTarget splits a collector URL such as "http://otel-collector:4318"
// into the host:port the OTLP exporters expect and whether TLS is off. A
// bare host:port is taken as plain HTTP.
func otlpTarget(endpoint string) (host string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, ErrMissingEndpoint
	}
	u, perr := url.Parse(endpoint)
	if perr != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
