package infrastructure

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"leadcli/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitializeOTel(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.TelemetryConfig
		wantErr     bool
		wantTracing bool
		wantMetrics bool
	}{
		{
			name: "everything disabled",
			cfg:  config.TelemetryConfig{ServiceName: "test", TraceExporter: "none", MetricExporter: "none"},
		},
		{
			name:        "prometheus metrics",
			cfg:         config.TelemetryConfig{ServiceName: "test", TraceExporter: "none", MetricExporter: "prometheus"},
			wantMetrics: true,
		},
		{
			name:        "stdout tracing",
			cfg:         config.TelemetryConfig{ServiceName: "test", TraceExporter: "stdout", MetricExporter: "none", SampleRatio: 1},
			wantTracing: true,
		},
		{
			name:    "unknown trace exporter",
			cfg:     config.TelemetryConfig{ServiceName: "test", TraceExporter: "otlp", MetricExporter: "none"},
			wantErr: true,
		},
		{
			name:    "unknown metric exporter",
			cfg:     config.TelemetryConfig{ServiceName: "test", TraceExporter: "none", MetricExporter: "statsd"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var spans bytes.Buffer
			original := traceWriter
			traceWriter = &spans
			defer func() { traceWriter = original }()

			providers, err := InitializeOTel(tt.cfg, "test-version", testLogger())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer providers.Shutdown(context.Background())

			require.NotNil(t, providers.Tracer)
			require.NotNil(t, providers.Meter)
			assert.Equal(t, tt.wantTracing, providers.TracerProvider != nil)
			assert.Equal(t, tt.wantMetrics, providers.PrometheusHTTP != nil)

			_, span := providers.Tracer.Start(context.Background(), "test-span")
			span.End()

			if tt.wantTracing {
				require.NoError(t, providers.Shutdown(context.Background()))
				assert.Contains(t, spans.String(), "test-span")
			}
		})
	}
}

func TestReportMetrics_ExposedOnPrometheusHandler(t *testing.T) {
	providers, err := InitializeOTel(config.TelemetryConfig{
		ServiceName:    "test",
		TraceExporter:  "none",
		MetricExporter: "prometheus",
	}, "test-version", testLogger())
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	metrics, err := CreateReportMetrics(providers.Meter)
	require.NoError(t, err)

	ctx := context.Background()
	metrics.LinesParsed.Add(ctx, 53)
	metrics.ReportsGenerated.Add(ctx, 1, metric.WithAttributes(attribute.String("format", "text")))
	metrics.ReportDuration.Record(ctx, 0.25)

	rec := httptest.NewRecorder()
	providers.PrometheusHTTP.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "lead_lines_parsed_total")
	assert.Contains(t, body, "lead_reports_generated_total")
	assert.Contains(t, body, "lead_report_duration_seconds")
}

func TestCreateReportMetrics_Noop(t *testing.T) {
	metrics, err := CreateReportMetrics(NoopProviders(testLogger()).Meter)
	require.NoError(t, err)

	// Recording on no-op instruments must not panic.
	metrics.ParseErrors.Add(context.Background(), 1)
}
