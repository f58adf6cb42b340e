package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names used by WriteXLSX.
const (
	DistrictsSheet = "Districts"
	SummarySheet   = "Summary"
)

// WriteXLSX writes r as a workbook with a Districts sheet (one row per
// district, bold header) and a Summary sheet.
func WriteXLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), DistrictsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := writeDistrictsSheet(f, r); err != nil {
		return err
	}
	if err := writeSummarySheet(f, r); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeDistrictsSheet(f *excelize.File, r Report) error {
	if err := f.SetSheetRow(DistrictsSheet, "A1", &CSVHeaders); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(CSVHeaders))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(DistrictsSheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	for i, d := range r.Districts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{d.District, d.Samples, d.Total, d.Average, d.Max}
		if err := f.SetSheetRow(DistrictsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", d.District, err)
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, r Report) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Samples", r.Samples},
		{"Total (" + r.Unit + ")", r.Total},
		{"Average (" + r.Unit + ")", r.Average},
	}
	if r.MaxDistrict != nil {
		rows = append(rows,
			[]interface{}{"Max district", r.MaxDistrict.District},
			[]interface{}{"Max average (" + r.Unit + ")", r.MaxDistrict.Average},
		)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}
