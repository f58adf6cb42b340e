package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"leadcli/internal/aggregate"
	"leadcli/internal/dataset"
	apperrors "leadcli/internal/errors"
	"leadcli/internal/infrastructure"
	"leadcli/internal/report"
	"leadcli/internal/sample"
)

// ReportService turns raw sample lines into district reports
type ReportService struct {
	source dataset.Source
	tracer *reportTracer
	logger *slog.Logger
}

// NewReportService creates a report service over source. A nil providers
// value disables tracing and metrics.
func NewReportService(source dataset.Source, providers *infrastructure.OTelProviders, logger *slog.Logger) (*ReportService, error) {
	if source == nil {
		return nil, apperrors.NewConfigError("report service requires a sample source", nil)
	}
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	if providers == nil {
		providers = infrastructure.NoopProviders(logger)
	}

	tracer, err := newReportTracer(providers)
	if err != nil {
		return nil, fmt.Errorf("failed to create report metrics: %w", err)
	}

	return &ReportService{
		source: source,
		tracer: tracer,
		logger: infrastructure.WithComponent(logger, "report_service"),
	}, nil
}

// Samples reads and parses every line of the source.
func (s *ReportService) Samples(ctx context.Context) ([]sample.Sample, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := s.tracer.startStage(ctx, "load_samples")
	defer span.End()

	lines, err := s.readLines(ctx)
	if err != nil {
		failSpan(span, err)
		return nil, err
	}

	samples, err := s.parseLines(ctx, lines)
	if err != nil {
		failSpan(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("samples.count", len(samples)))
	return samples, nil
}

// Generate builds the full district report.
func (s *ReportService) Generate(ctx context.Context) (report.Report, error) {
	start := time.Now()
	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := s.tracer.startStage(ctx, "generate")
	defer span.End()

	samples, err := s.Samples(ctx)
	if err != nil {
		failSpan(span, err)
		return report.Report{}, err
	}

	r := report.Build(samples)
	duration := time.Since(start)
	s.tracer.recordReport(ctx, span, duration, len(r.Districts))

	attrs := []any{
		slog.Int("samples", r.Samples),
		slog.Int("districts", len(r.Districts)),
		slog.Duration("duration", duration),
	}
	if r.MaxDistrict != nil {
		attrs = append(attrs, slog.String("max_district", r.MaxDistrict.District))
	}
	s.logger.InfoContext(ctx, "Report generated", attrs...)

	return r, nil
}

// District returns the figures for one district. Unknown names are a
// NOT_FOUND error rather than a zero average.
func (s *ReportService) District(ctx context.Context, name string) (aggregate.DistrictStat, error) {
	r, err := s.Generate(ctx)
	if err != nil {
		return aggregate.DistrictStat{}, err
	}

	stat, ok := r.District(name)
	if !ok {
		s.logger.DebugContext(ctx, "District not found", slog.String("district", name))
		return aggregate.DistrictStat{}, apperrors.NewNotFoundError("district").WithContext("district", name)
	}
	return stat, nil
}

// MaxDistrict returns the district with the highest average.
func (s *ReportService) MaxDistrict(ctx context.Context) (aggregate.DistrictStat, error) {
	r, err := s.Generate(ctx)
	if err != nil {
		return aggregate.DistrictStat{}, err
	}
	if r.MaxDistrict == nil {
		return aggregate.DistrictStat{}, apperrors.NewAppError(apperrors.ErrTypeNotFound, "max district not found", ErrNoDistricts)
	}
	return *r.MaxDistrict, nil
}

func (s *ReportService) readLines(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.startStage(ctx, "read_lines")
	defer span.End()

	lines, err := s.source.Lines(ctx)
	if err != nil {
		failSpan(span, err)
		s.logger.ErrorContext(ctx, "Failed to read sample lines", slog.String("error", err.Error()))
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, apperrors.NewInternalError("failed to read sample lines", err)
	}

	span.SetAttributes(attribute.Int("lines.count", len(lines)))
	return lines, nil
}

func (s *ReportService) parseLines(ctx context.Context, lines []string) ([]sample.Sample, error) {
	ctx, span := s.tracer.startStage(ctx, "parse_lines", attribute.Int("lines.count", len(lines)))
	defer span.End()

	samples, err := sample.ParseLines(lines)
	if err != nil {
		s.tracer.recordParseError(ctx, span, err)

		appErr := apperrors.NewParsingError("failed to parse sample data", err)
		var perr *sample.ParseError
		if errors.As(err, &perr) {
			appErr.WithContext("line", perr.Line).WithContext("field", perr.Field)
		}
		s.logger.ErrorContext(ctx, "Failed to parse sample data", slog.String("error", err.Error()))
		return nil, appErr
	}

	s.tracer.recordParsed(ctx, len(lines))
	return samples, nil
}
