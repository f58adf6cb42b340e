// Package http implements the read-only JSON API over the report service.
//
// Handlers stay thin: they read path and query parameters, call the service
// and render the result with chi/render. Every failure is handed to
// errors.ErrorHandler, which answers with an RFC 7807 problem document.
//
// Routes (mounted under /api):
//
//	GET /health
//	GET /report?format=text|csv|xlsx|json
//	GET /samples
//	GET /districts
//	GET /districts/max
//	GET /districts/{district}
//
// MetricsHandler serves the Prometheus exposition at /metrics.
package http
