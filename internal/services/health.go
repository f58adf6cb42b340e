package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"leadcli/internal/dataset"
	"leadcli/internal/infrastructure"
	"leadcli/internal/sample"
)

// Health states
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// HealthService provides health check functionality
type HealthService struct {
	version   string
	source    dataset.Source
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Uptime    string                 `json:"uptime"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Checks    map[string]CheckResult `json:"checks"`
}

// CheckResult is the outcome of one dependency check
type CheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Samples int    `json:"samples,omitempty"`
}

// NewHealthService creates a new health service
func NewHealthService(version string, source dataset.Source, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	return &HealthService{
		version:   version,
		source:    source,
		startTime: time.Now(),
		logger:    infrastructure.WithComponent(logger, "health_service"),
	}
}

// Check reports overall health. The data set check reads and parses every
// line so a corrupt data set shows up as degraded.
func (hs *HealthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC(),
		Version:   hs.version,
		Uptime:    time.Since(hs.startTime).Round(time.Second).String(),
		Runtime: map[string]interface{}{
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
		Checks: map[string]CheckResult{
			"dataset": hs.checkDataset(ctx),
		},
	}

	for _, check := range status.Checks {
		if check.Status != StatusHealthy {
			status.Status = StatusDegraded
		}
	}

	return status
}

func (hs *HealthService) checkDataset(ctx context.Context) CheckResult {
	if hs.source == nil {
		return CheckResult{Status: StatusDegraded, Message: "no sample source configured"}
	}

	lines, err := hs.source.Lines(ctx)
	if err != nil {
		hs.logger.WarnContext(ctx, "Dataset health check failed", slog.String("error", err.Error()))
		return CheckResult{Status: StatusDegraded, Message: err.Error()}
	}

	samples, err := sample.ParseLines(lines)
	if err != nil {
		hs.logger.WarnContext(ctx, "Dataset health check failed", slog.String("error", err.Error()))
		return CheckResult{Status: StatusDegraded, Message: err.Error()}
	}

	return CheckResult{Status: StatusHealthy, Samples: len(samples)}
}
