package parser

import (
	"github.com/mapjson/mapjson-go/pkg/mapjson/models"
)

// CropToUsedRange trims a grid to the bounding box of its non-empty cells.
// Leading empty rows and columns are dropped, as are trailing empty cells of
// each row. A grid without any value crops to nil.
func CropToUsedRange(grid models.Grid) models.Grid {
	minRow, maxRow, minCol, _ := findDataBounds(grid)
	if minRow < 0 {
		return nil
	}

	cropped := make(models.Grid, 0, maxRow-minRow+1)
	for _, row := range grid[minRow : maxRow+1] {
		if len(row) <= minCol {
			cropped = append(cropped, nil)
			continue
		}
		cropped = append(cropped, trimTrailingEmpty(row[minCol:]))
	}
	return cropped
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(grid models.Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range grid {
		for colIdx, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

func trimTrailingEmpty(row []models.Cell) []models.Cell {
	end := len(row)
	for end > 0 && row[end-1].IsEmpty() {
		end--
	}
	return row[:end]
}
