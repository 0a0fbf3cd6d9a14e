package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeToUTF8 returns data as valid UTF-8. Exports from older spreadsheet
// tools arrive as Windows-1252 or Latin-1; those are transcoded instead of
// rejected.
func decodeToUTF8(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}

	for _, cm := range []*charmap.Charmap{charmap.Windows1252, charmap.ISO8859_1} {
		decoded, _, err := transform.Bytes(cm.NewDecoder(), data)
		if err == nil && utf8.Valid(decoded) {
			log.Printf("CSV is not UTF-8, decoded as %s", cm)
			return decoded, nil
		}
	}
	return nil, fmt.Errorf("file is neither UTF-8 nor a supported legacy encoding")
}

// rosterColumns holds the resolved column index per field, -1 when absent.
type rosterColumns struct {
	nama     int
	nim      int
	angkatan int
	kode     int
}

// findRosterColumns resolves header cells by keyword so column order in
// the source file does not matter.
func findRosterColumns(header []string) rosterColumns {
	cols := rosterColumns{nama: -1, nim: -1, angkatan: -1, kode: -1}
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case cols.nama == -1 && strings.Contains(name, "nama"):
			cols.nama = i
		case cols.nim == -1 && strings.Contains(name, "nim"):
			cols.nim = i
		case cols.angkatan == -1 && (strings.Contains(name, "angkatan") || strings.Contains(name, "tahun")):
			cols.angkatan = i
		case cols.kode == -1 && (strings.Contains(name, "kode") || strings.Contains(name, "code")):
			cols.kode = i
		}
	}
	return cols
}

func (c rosterColumns) validate() error {
	if c.nama == -1 {
		return fmt.Errorf("required column 'nama' not found in header")
	}
	if c.nim == -1 {
		return fmt.Errorf("required column 'nim' not found in header")
	}
	if c.angkatan == -1 {
		return fmt.Errorf("required column 'angkatan' not found in header")
	}
	return nil
}

func cell(row []string, idx int) string {
	if idx >= 0 && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// recordFromRow builds a RosterRecord from one data row. line is 1-based.
func recordFromRow(row []string, cols rosterColumns, line int) (RosterRecord, error) {
	rec := RosterRecord{
		Line:     line,
		FullName: cell(row, cols.nama),
		NIM:      cell(row, cols.nim),
		Code:     strings.ToUpper(cell(row, cols.kode)),
	}

	if rec.FullName == "" && rec.NIM == "" {
		return rec, fmt.Errorf("row is empty")
	}
	if rec.NIM == "" {
		return rec, fmt.Errorf("missing nim")
	}

	yearStr := cell(row, cols.angkatan)
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1000 || year > 9999 {
		return rec, fmt.Errorf("invalid angkatan %q", yearStr)
	}
	rec.Angkatan = year

	return rec, nil
}

// ParseRosterCSV parses a roster CSV stream. The first row must be a
// header containing nama, nim and angkatan columns (kode is optional), in
// any order. Malformed rows are skipped with a logged warning so one bad
// line does not sink the file.
func ParseRosterCSV(r io.Reader) ([]RosterRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	decoded, err := decodeToUTF8(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
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
		line := i + 2 // header is line 1
		if isEmptyRow(row) {
			continue
		}
		rec, err := recordFromRow(row, cols, line)
		if err != nil {
			log.Printf("CSV line %d skipped: %v", line, err)
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
