package models

// Grid is a sheet's cells, rows top-to-bottom and cells left-to-right.
// Rows are not padded, so trailing empty cells may be absent.
type Grid [][]Cell

// Record maps a header name to a JSON-compatible value.
type Record map[string]interface{}

// Document is the JSON document written for one sheet.
type Document struct {
	// Markers holds one record per data row, in row order.
	Markers []Record `json:"Markers"`
}
