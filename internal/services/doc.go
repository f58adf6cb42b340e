// Package services orchestrates the report pipeline on top of the pure
// sample and aggregate packages.
//
// ReportService reads raw lines from a dataset.Source, parses them with
// sample.ParseLines and aggregates the result into a report.Report. Each run
// gets a trace ID on its context, a span per stage and updates to the report
// metrics:
//
//	report.generate
//	  report.load_samples
//	    report.read_lines
//	    report.parse_lines
//
// Errors leave the service as *errors.AppError values: PARSING for rejected
// records, NOT_FOUND for unknown districts and INTERNAL when the source
// fails. Context cancellation is passed through unchanged.
//
// HealthService reports the build version and whether the data set can
// still be read and parsed.
package services
