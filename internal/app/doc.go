// Package app wires the report service into an HTTP application and manages
// its lifecycle.
//
// NewApplication takes an already loaded configuration, logger and telemetry
// providers, builds the services, the chi router and the http.Server. Run
// serves until the context is cancelled or SIGINT/SIGTERM arrives, then shuts
// the server and the telemetry providers down within the configured shutdown
// timeout.
//
// Middleware order: RequestID, RealIP, OpenTelemetry, StructuredLogger,
// Recoverer, Timeout, RateLimiter. /metrics sits outside the API group.
//
// The app never calls os.Exit; errors are returned to main.
package app
