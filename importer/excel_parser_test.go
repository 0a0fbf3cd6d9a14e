package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildRosterWorkbook writes rows to an in-memory .xlsx for parser tests.
func buildRosterWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParseRosterExcel(t *testing.T) {
	buf := buildRosterWorkbook(t, [][]any{
		{"Nama Lengkap", "NIM", "Angkatan", "Kode"},
		{"BUDI SANTOSO", "1301220001", 2024, ""},
		{"ANDI WIJAYA", "1301220002", 2023, "ANW"},
	})

	records, err := ParseRosterExcel(buf)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "BUDI SANTOSO", records[0].FullName)
	assert.Equal(t, 2024, records[0].Angkatan)
	assert.Equal(t, "", records[0].Code)
	assert.Equal(t, "ANW", records[1].Code)
}

func TestParseRosterExcelSkipsEmptyAndMalformed(t *testing.T) {
	buf := buildRosterWorkbook(t, [][]any{
		{"nama", "nim", "angkatan"},
		{"BUDI", "1301", 2024},
		{"", "", ""},
		{"BAD YEAR", "1302", "soon"},
	})

	records, err := ParseRosterExcel(buf)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "BUDI", records[0].FullName)
}

func TestParseRosterExcelMissingHeader(t *testing.T) {
	buf := buildRosterWorkbook(t, [][]any{
		{"foo", "bar", "baz"},
		{"BUDI", "1301", 2024},
	})

	_, err := ParseRosterExcel(buf)
	assert.Error(t, err)
}

func TestParseRosterExcelNotAnExcelFile(t *testing.T) {
	_, err := ParseRosterExcel(bytes.NewReader([]byte("not a zip")))
	assert.Error(t, err)
}
