package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVHeaders is the header row written by WriteCSV.
var CSVHeaders = []string{"District", "Samples", "Total", "Average", "Max"}

// WriteCSV writes one row per district.
func WriteCSV(w io.Writer, r Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeaders); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, d := range r.Districts {
		record := []string{
			d.District,
			formatInt(d.Samples),
			formatInt(d.Total),
			strconv.FormatFloat(d.Average, 'f', -1, 64),
			formatInt(d.Max),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
