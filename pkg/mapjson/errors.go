package mapjson

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOpenWorkbook indicates the input file could not be opened or parsed as a workbook.
var ErrOpenWorkbook = errors.New("unable to open workbook")

// ErrWriteOutput indicates a JSON output file could not be created or written.
var ErrWriteOutput = errors.New("unable to write JSON file")

// SheetError represents a sheet that could not be read.
// It is the only error a run recovers from: the sheet is skipped.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("failed to read sheet %q from the workbook: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Err:       err,
	}
}
