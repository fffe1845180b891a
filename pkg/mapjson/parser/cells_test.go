package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mapjson/mapjson-go/pkg/mapjson/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func saveAndReopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestReadGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Header1"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "Header2"))
	require.NoError(t, f.SetCellValue(sheetName, "C1", "Header3"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", 100))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 200.5))
	require.NoError(t, f.SetCellValue(sheetName, "C2", true))
	require.NoError(t, f.SetCellValue(sheetName, "A3", "Text"))

	grid, err := ReadGrid(saveAndReopen(t, f), sheetName)
	require.NoError(t, err)
	require.Len(t, grid, 3)

	require.Len(t, grid[0], 3)
	assert.Equal(t, models.Cell{Kind: models.KindString, Text: "Header1"}, grid[0][0])
	assert.Equal(t, "Header3", grid[0][2].Text)

	require.Len(t, grid[1], 3)
	assert.Equal(t, models.KindInt, grid[1][0].Kind)
	assert.Equal(t, int64(100), grid[1][0].Int)
	assert.Equal(t, models.KindFloat, grid[1][1].Kind)
	assert.Equal(t, 200.5, grid[1][1].Float)
	assert.Equal(t, models.KindBool, grid[1][2].Kind)
	assert.Equal(t, "TRUE", grid[1][2].Text)

	require.Len(t, grid[2], 1)
	assert.Equal(t, models.Cell{Kind: models.KindString, Text: "Text"}, grid[2][0])
}

func TestReadGridDates(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetSheetRow(sheetName, "A1", &[]interface{}{"When", "Day", "Amount"}))
	require.NoError(t, f.SetCellValue(sheetName, "A2", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 45293))
	require.NoError(t, f.SetCellValue(sheetName, "C2", 45293.5))

	dayFmt := "yyyy-mm-dd"
	dayStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dayFmt})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheetName, "B2", "B2", dayStyle))

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheetName, "C2", "C2", amountStyle))

	grid, err := ReadGrid(saveAndReopen(t, f), sheetName)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	require.Len(t, grid[1], 3)

	assert.Equal(t, models.KindDate, grid[1][0].Kind)
	assert.NotEmpty(t, grid[1][0].Text)
	assert.Equal(t, models.KindDate, grid[1][1].Kind)
	assert.Equal(t, "2024-01-02", grid[1][1].Text)
	assert.Equal(t, models.KindFloat, grid[1][2].Kind)
	assert.Equal(t, 45293.5, grid[1][2].Float)
}

func TestReadGridEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	grid, err := ReadGrid(saveAndReopen(t, f), "Sheet1")
	require.NoError(t, err)
	assert.Empty(t, grid)
}

func TestReadGridUsedRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "B3", "Name"))
	require.NoError(t, f.SetCellValue(sheetName, "C3", "Frame"))
	require.NoError(t, f.SetCellValue(sheetName, "B4", "intro"))
	require.NoError(t, f.SetCellValue(sheetName, "C4", 12))

	grid, err := ReadGrid(saveAndReopen(t, f), sheetName)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, "Name", grid[0][0].Text)
	assert.Equal(t, "Frame", grid[0][1].Text)
	assert.Equal(t, int64(12), grid[1][1].Int)
}

func TestReadGridMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := ReadGrid(f, "NoSuchSheet")
	assert.Error(t, err)
}

func TestClassifyCell(t *testing.T) {
	tests := []struct {
		name     string
		cellType excelize.CellType
		isDate   bool
		raw      string
		display  string
		expected models.Cell
	}{
		{"integer", excelize.CellTypeUnset, false, "123", "123", models.Cell{Kind: models.KindInt, Int: 123, Text: "123"}},
		{"negative integer", excelize.CellTypeNumber, false, "-100", "-100", models.Cell{Kind: models.KindInt, Int: -100, Text: "-100"}},
		{"decimal", excelize.CellTypeUnset, false, "123.45", "123.45", models.Cell{Kind: models.KindFloat, Float: 123.45, Text: "123.45"}},
		{"exponent", excelize.CellTypeNumber, false, "1E+3", "1000", models.Cell{Kind: models.KindFloat, Float: 1000, Text: "1000"}},
		{"formatted number keeps raw value", excelize.CellTypeUnset, false, "0.5", "50%", models.Cell{Kind: models.KindFloat, Float: 0.5, Text: "50%"}},
		{"unparsable number", excelize.CellTypeUnset, false, "abc", "abc", models.Cell{Kind: models.KindString, Text: "abc"}},
		{"shared string", excelize.CellTypeSharedString, false, "42", "42", models.Cell{Kind: models.KindString, Text: "42"}},
		{"inline string", excelize.CellTypeInlineString, false, "hello", "hello", models.Cell{Kind: models.KindString, Text: "hello"}},
		{"formula string", excelize.CellTypeFormula, false, "done", "done", models.Cell{Kind: models.KindString, Text: "done"}},
		{"bool", excelize.CellTypeBool, false, "1", "TRUE", models.Cell{Kind: models.KindBool, Text: "TRUE"}},
		{"date", excelize.CellTypeDate, false, "2024-01-02T00:00:00Z", "01-02-24", models.Cell{Kind: models.KindDate, Text: "01-02-24"}},
		{"error", excelize.CellTypeError, false, "#DIV/0!", "", models.Cell{Kind: models.KindError, Text: "#DIV/0!"}},
		{"empty", excelize.CellTypeUnset, false, "", "", models.Cell{}},
		{"date formatted serial", excelize.CellTypeUnset, true, "45293", "1/2/24 00:00", models.Cell{Kind: models.KindDate, Text: "1/2/24 00:00"}},
		{"time formatted fraction", excelize.CellTypeNumber, true, "0.75", "18:00", models.Cell{Kind: models.KindDate, Text: "18:00"}},
		{"date format on text", excelize.CellTypeSharedString, true, "tbd", "tbd", models.Cell{Kind: models.KindString, Text: "tbd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyCell(tt.cellType, tt.isDate, tt.raw, tt.display))
		})
	}
}
