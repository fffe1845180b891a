package output

// FileName returns the output path for a sheet of the given workbook.
// It is the plain concatenation <bookPath>-<sheetName>.json, resolved
// against the working directory when bookPath is relative.
func FileName(bookPath, sheetName string) string {
	return bookPath + "-" + sheetName + ".json"
}
