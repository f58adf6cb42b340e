// Package config provides configuration management for the lead report tools.
//
// # Configuration Sources
//
// Configuration is assembled from the following sources, later sources
// overriding earlier ones:
//
//	1. Default values (Default)
//	2. An optional YAML file named by LEAD_CONFIG_FILE
//	3. Environment variables (highest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern LEAD_<SECTION>_<KEY>:
//
//	LEAD_REPORT_FORMAT=csv
//	LEAD_LOGGING_LEVEL=debug
//	LEAD_LOGGING_OUTPUT=both
//	LEAD_SERVER_PORT=9000
//	LEAD_SERVER_RATE_LIMIT_RPS=20
//	LEAD_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Validation
//
// The merged configuration is validated with struct tags before Load
// returns; an invalid value yields a CONFIG AppError naming the field.
package config
