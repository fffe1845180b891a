// Package parser reads typed cell grids out of excelize workbooks.
package parser

import (
	"strconv"

	"github.com/mapjson/mapjson-go/pkg/mapjson/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads every cell of a sheet with its type.
// The returned grid is cropped to the sheet's used range, so the first row
// is the first row that holds any value.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	display, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	dates := newDateFormatCache(f)
	grid := make(models.Grid, len(raw))
	for rowIdx, row := range raw {
		cells := make([]models.Cell, len(row))
		for colIdx, rawValue := range row {
			if rawValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			isDate := false
			if cellType == excelize.CellTypeUnset || cellType == excelize.CellTypeNumber {
				if isDate, err = dates.isDateCell(sheetName, cellName); err != nil {
					return nil, err
				}
			}
			cells[colIdx] = classifyCell(cellType, isDate, rawValue, valueAt(display, rowIdx, colIdx))
		}
		grid[rowIdx] = cells
	}

	return CropToUsedRange(grid), nil
}

// classifyCell builds a typed cell from its excelize type, raw stored value
// and formatted display text. isDate marks a numeric cell whose number
// format renders a date or time.
func classifyCell(cellType excelize.CellType, isDate bool, raw, display string) models.Cell {
	if display == "" {
		display = raw
	}
	switch cellType {
	case excelize.CellTypeBool:
		return models.Cell{Kind: models.KindBool, Text: display}
	case excelize.CellTypeDate:
		return models.Cell{Kind: models.KindDate, Text: display}
	case excelize.CellTypeError:
		return models.Cell{Kind: models.KindError, Text: display}
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString, excelize.CellTypeFormula:
		return models.Cell{Kind: models.KindString, Text: display}
	}
	cell := parseNumber(raw, display)
	if isDate && (cell.Kind == models.KindInt || cell.Kind == models.KindFloat) {
		return models.Cell{Kind: models.KindDate, Text: display}
	}
	return cell
}

// parseNumber attempts to parse a stored value as a number.
// Integers become KindInt, decimals KindFloat, anything else KindString.
func parseNumber(raw, display string) models.Cell {
	if raw == "" {
		return models.Cell{}
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return models.Cell{Kind: models.KindInt, Int: i, Text: display}
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return models.Cell{Kind: models.KindFloat, Float: f, Text: display}
	}
	return models.Cell{Kind: models.KindString, Text: display}
}

func valueAt(rows [][]string, rowIdx, colIdx int) string {
	if rowIdx >= len(rows) || colIdx >= len(rows[rowIdx]) {
		return ""
	}
	return rows[rowIdx][colIdx]
}
