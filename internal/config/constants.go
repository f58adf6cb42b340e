package config

import "time"

// Application constants
const (
	AppName = "Lead Report"

	// EnvPrefix namespaces every environment variable (LEAD_REPORT_FORMAT, ...).
	EnvPrefix = "LEAD"

	// ConfigFileEnv names the variable holding an optional YAML config path.
	ConfigFileEnv = "LEAD_CONFIG_FILE"

	DefaultLogFile = "logs/lead.log"
	DefaultPort    = 8080

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultRequestTimeout  = 10 * time.Second

	DefaultRateLimitRPS   = 100
	DefaultRateLimitBurst = 50
)

// Report formats
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)
