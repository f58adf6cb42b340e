package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"leadcli/internal/infrastructure"
)

// reportTracer wraps span and metric bookkeeping for one pipeline
type reportTracer struct {
	tracer  trace.Tracer
	metrics *infrastructure.ReportMetrics
}

func newReportTracer(providers *infrastructure.OTelProviders) (*reportTracer, error) {
	metrics, err := infrastructure.CreateReportMetrics(providers.Meter)
	if err != nil {
		return nil, err
	}
	return &reportTracer{
		tracer:  providers.Tracer,
		metrics: metrics,
	}, nil
}

func (rt *reportTracer) startStage(ctx context.Context, stage string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("run.id", infrastructure.GetTraceID(ctx)))
	return rt.tracer.Start(ctx, "report."+stage,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

func (rt *reportTracer) recordParsed(ctx context.Context, lines int) {
	rt.metrics.LinesParsed.Add(ctx, int64(lines))
}

func (rt *reportTracer) recordParseError(ctx context.Context, span trace.Span, err error) {
	rt.metrics.ParseErrors.Add(ctx, 1)
	failSpan(span, err)
}

func (rt *reportTracer) recordReport(ctx context.Context, span trace.Span, duration time.Duration, districts int) {
	rt.metrics.ReportsGenerated.Add(ctx, 1)
	rt.metrics.ReportDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(attribute.Int("districts", districts)),
	)

	span.SetAttributes(
		attribute.Int("report.districts", districts),
		attribute.Float64("report.duration_seconds", duration.Seconds()),
	)
	span.SetStatus(codes.Ok, "report generated")
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
