package models

// SheetResult describes the outcome of converting one sheet.
type SheetResult struct {
	// SheetName is the sheet name as reported by the workbook.
	SheetName string
	// OutputPath is the written JSON file, empty when the sheet was skipped.
	OutputPath string
	// Records is the number of records written.
	Records int
	// Err is the recoverable error that caused the sheet to be skipped.
	Err error
}

// RunSummary collects per-sheet results of a conversion run.
type RunSummary struct {
	// BookPath is the input workbook path.
	BookPath string
	// Sheets holds results in workbook order.
	Sheets []SheetResult
}

// Converted returns the number of sheets that produced an output file.
func (s RunSummary) Converted() int {
	n := 0
	for _, r := range s.Sheets {
		if r.Err == nil {
			n++
		}
	}
	return n
}
