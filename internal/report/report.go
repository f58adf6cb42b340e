package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"leadcli/internal/aggregate"
	"leadcli/internal/config"
	apperrors "leadcli/internal/errors"
	"leadcli/internal/sample"
)

// Report is the rendered view of a sample set.
type Report struct {
	aggregate.Summary
	Unit string `json:"unit"`
}

// Build aggregates samples into a Report.
func Build(samples []sample.Sample) Report {
	return Report{
		Summary: aggregate.Summarize(samples),
		Unit:    sample.Unit,
	}
}

// Formats lists the formats accepted by Write.
var Formats = []string{config.FormatText, config.FormatCSV, config.FormatXLSX, config.FormatJSON}

// ContentType returns the media type of a rendering.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case config.FormatCSV:
		return "text/csv; charset=utf-8"
	case config.FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case config.FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Write renders r to w in the given format.
func Write(w io.Writer, format string, r Report) error {
	switch strings.ToLower(format) {
	case config.FormatText:
		return WriteText(w, r)
	case config.FormatCSV:
		return WriteCSV(w, r)
	case config.FormatXLSX:
		return WriteXLSX(w, r)
	case config.FormatJSON:
		return WriteJSON(w, r)
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unsupported report format %q", format)).
			WithContext("supported", strings.Join(Formats, ","))
	}
}

// WriteText writes the per-district averages followed by the district with
// the highest average. The last line is omitted when there are no districts.
func WriteText(w io.Writer, r Report) error {
	for _, d := range r.Districts {
		if _, err := fmt.Fprintf(w, "%s: %s\n", d.District, formatAverage(d.Average)); err != nil {
			return fmt.Errorf("failed to write district line: %w", err)
		}
	}

	if r.MaxDistrict == nil {
		return nil
	}

	if _, err := fmt.Fprintf(w, "Max lead is %s: %s\n", r.MaxDistrict.District, formatAverage(r.MaxDistrict.Average)); err != nil {
		return fmt.Errorf("failed to write max line: %w", err)
	}
	return nil
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
