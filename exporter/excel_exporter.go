// Package exporter renders the asprak roster to downloadable files.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"asprakserver/database"
)

const rosterSheetName = "Aspraks"

var rosterHeaders = []string{"NIM", "Nama Lengkap", "Kode", "Kode Rule", "Angkatan", "Status", "Created At"}

// BuildRosterWorkbook renders roster rows into an .xlsx workbook. The
// caller owns the returned file and must Close it.
func BuildRosterWorkbook(aspraks []database.Asprak) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), rosterSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range rosterHeaders {
		cellRef, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(rosterSheetName, cellRef, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(rosterSheetName, cellRef, cellRef, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
	}

	for i, a := range aspraks {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{a.NIM, a.FullName, a.Code, a.CodeRule, a.Angkatan, a.Status, a.CreatedAt.Format(time.RFC3339)}
		if err := f.SetSheetRow(rosterSheetName, cellRef, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(rosterSheetName, "A", "B", 24); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	return f, nil
}

// WriteRosterCSV streams the roster as CSV.
func WriteRosterCSV(w io.Writer, aspraks []database.Asprak) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(rosterHeaders); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, a := range aspraks {
		record := []string{
			a.NIM,
			a.FullName,
			a.Code,
			a.CodeRule,
			strconv.Itoa(a.Angkatan),
			a.Status,
			a.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	return writer.Error()
}
