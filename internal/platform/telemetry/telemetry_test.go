package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/continuum/internal/platform/telemetry"
)

// Tests in this file replace global providers and do not run in parallel.

func TestInitTracer(t *testing.T) {
	for _, tc := range []struct {
		name     string
		exporter string
		endpoint string
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp url", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp host port", exporter: telemetry.ExporterOTLP, endpoint: "localhost:4318"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tp, err := telemetry.InitTracer(t.Context(), "continuum-test", tc.exporter, tc.endpoint)
			require.NoError(t, err)
			t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

			assert.Same(t, tp, otel.GetTracerProvider())
			assert.ElementsMatch(t, []string{"traceparent", "tracestate", "baggage"},
				otel.GetTextMapPropagator().Fields())
		})
	}
}

func TestInitMeter(t *testing.T) {
	for _, tc := range []struct {
		name     string
		exporter string
		endpoint string
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.example.com:4318"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			mp, err := telemetry.InitMeter(t.Context(), "continuum-test", tc.exporter, tc.endpoint)
			require.NoError(t, err)
			t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

			assert.Same(t, mp, otel.GetMeterProvider())
		})
	}
}

func TestInit_RejectsBadExporterConfig(t *testing.T) {
	_, err := telemetry.InitTracer(t.Context(), "continuum-test", "zipkin", "")
	require.ErrorContains(t, err, `unsupported trace exporter "zipkin"`)

	_, err = telemetry.InitMeter(t.Context(), "continuum-test", "zipkin", "")
	require.ErrorContains(t, err, `unsupported metric exporter "zipkin"`)

	_, err = telemetry.InitTracer(t.Context(), "continuum-test", telemetry.ExporterOTLP, "")
	require.ErrorIs(t, err, telemetry.ErrMissingEndpoint)

	_, err = telemetry.InitMeter(t.Context(), "continuum-test", telemetry.ExporterOTLP, "")
	require.ErrorIs(t, err, telemetry.ErrMissingEndpoint)
}

func TestNewMetrics_RegistersInstruments(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

	m, err := telemetry.NewMetrics(mp, "continuum-test")
	require.NoError(t, err)

	ctx := t.Context()
	m.ServerRequestDuration.Record(ctx, 0.01)
	m.ServerRequestTotal.Add(ctx, 1)
	m.ClientRequestDuration.Record(ctx, 0.02)
	m.ClientRequestTotal.Add(ctx, 1)
	m.UpstreamErrorTotal.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var names []string
	for _, md := range rm.ScopeMetrics[0].Metrics {
		names = append(names, md.Name)
	}
	assert.ElementsMatch(t, []string{
		"http.server.request.duration",
		"http.server.request.total",
		"http.client.request.duration",
		"http.client.request.total",
		"continuum.upstream.errors",
	}, names)
}

func TestNewMetrics_AcceptsNoopProvider(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "continuum-test")
	require.NoError(t, err)
	assert.NotNil(t, m.UpstreamErrorTotal)
}
