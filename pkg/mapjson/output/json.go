// Package output converts typed sheet grids into marker documents and
// serializes them to JSON.
package output

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/mapjson/mapjson-go/pkg/mapjson/models"
	"github.com/pkg/errors"
)

// ErrUnrepresentable indicates a numeric value that JSON cannot encode.
var ErrUnrepresentable = errors.New("value cannot be represented as a JSON number")

// CellValue converts a cell into a JSON-compatible value.
// Integer cells and whole floats within int64 range become int64, other
// floats stay float64, text cells become their string and every other
// kind (bool, date, error, empty) becomes "".
func CellValue(cell models.Cell) (interface{}, error) {
	switch cell.Kind {
	case models.KindInt:
		return cell.Int, nil
	case models.KindFloat:
		if math.IsNaN(cell.Float) || math.IsInf(cell.Float, 0) {
			return nil, errors.Wrapf(ErrUnrepresentable, "%v", cell.Float)
		}
		if _, frac := math.Modf(cell.Float); frac == 0 && inInt64Range(cell.Float) {
			return int64(cell.Float), nil
		}
		return cell.Float, nil
	default:
		return stringValue(cell), nil
	}
}

// stringValue returns the text of a text cell and "" for any other kind.
func stringValue(cell models.Cell) string {
	if cell.Kind != models.KindString {
		return ""
	}
	return cell.Text
}

func inInt64Range(f float64) bool {
	return f >= math.MinInt64 && f < 1<<63
}

// Headers returns the column names taken from the first row of a grid.
// Only text cells name a column; any other header cell yields "".
func Headers(grid models.Grid) []string {
	if len(grid) == 0 {
		return nil
	}
	headers := make([]string, len(grid[0]))
	for i, cell := range grid[0] {
		headers[i] = stringValue(cell)
	}
	return headers
}

// BuildRecord zips headers with a row's cells positionally. Pairing stops
// at the shorter of the two. A repeated header keeps the value of its last
// column.
func BuildRecord(headers []string, row []models.Cell) (models.Record, error) {
	n := len(headers)
	if len(row) < n {
		n = len(row)
	}
	record := make(models.Record, n)
	for i := 0; i < n; i++ {
		value, err := CellValue(row[i])
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", headers[i])
		}
		record[headers[i]] = value
	}
	return record, nil
}

// BuildDocument converts every row after the header row into a record.
func BuildDocument(grid models.Grid) (models.Document, error) {
	doc := models.Document{Markers: []models.Record{}}
	headers := Headers(grid)
	if len(grid) < 2 {
		return doc, nil
	}
	for i, row := range grid[1:] {
		record, err := BuildRecord(headers, row)
		if err != nil {
			return models.Document{}, errors.Wrapf(err, "data row %d", i+1)
		}
		doc.Markers = append(doc.Markers, record)
	}
	return doc, nil
}

// ToJSON serializes a document as indented JSON.
// Record keys are emitted in sorted order.
func ToJSON(doc models.Document) ([]byte, error) {
	if doc.Markers == nil {
		doc.Markers = []models.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
