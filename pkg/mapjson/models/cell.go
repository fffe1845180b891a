// Package models defines data structures for sheet conversion.
package models

// CellKind classifies the value held by a cell.
type CellKind int

const (
	// KindEmpty is a cell without a value.
	KindEmpty CellKind = iota
	// KindInt is an integer-valued number.
	KindInt
	// KindFloat is a floating-point number.
	KindFloat
	// KindString is text, including formula string results.
	KindString
	// KindBool is a boolean.
	KindBool
	// KindDate is an ISO 8601 date cell.
	KindDate
	// KindError is a formula error such as #DIV/0!.
	KindError
)

// Cell represents a single typed cell value.
type Cell struct {
	// Kind selects which payload field is meaningful.
	Kind CellKind
	// Int holds the value for KindInt.
	Int int64
	// Float holds the value for KindFloat.
	Float float64
	// Text is the display text of the cell. Set for every non-empty kind.
	Text string
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}
