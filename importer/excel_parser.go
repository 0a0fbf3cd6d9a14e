package importer

import (
	"fmt"
	"io"
	"log"

	"github.com/xuri/excelize/v2"
)

// ParseRosterExcel parses the first sheet of a roster .xlsx stream. The
// header row is matched by keyword, same as the CSV parser.
func ParseRosterExcel(r io.Reader) ([]RosterRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("file has no data rows")
	}

	cols := findRosterColumns(rows[0])
	if err := cols.validate(); err != nil {
		return nil, err
	}

	var records []RosterRecord
	for i, row := range rows[1:] {
		line := i + 2
		if isEmptyRow(row) {
			continue
		}
		rec, err := recordFromRow(row, cols, line)
		if err != nil {
			log.Printf("Excel row %d skipped: %v", line, err)
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}
