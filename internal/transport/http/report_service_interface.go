package http

import (
	"context"

	"leadcli/internal/aggregate"
	"leadcli/internal/report"
	"leadcli/internal/sample"
	"leadcli/internal/services"
)

// ReportServiceInterface defines the report operations the handlers need
type ReportServiceInterface interface {
	Generate(ctx context.Context) (report.Report, error)
	Samples(ctx context.Context) ([]sample.Sample, error)
	District(ctx context.Context, name string) (aggregate.DistrictStat, error)
	MaxDistrict(ctx context.Context) (aggregate.DistrictStat, error)
}

// HealthServiceInterface defines the health operations the handlers need
type HealthServiceInterface interface {
	Check(ctx context.Context) services.HealthStatus
}
