package mapjson

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// OpenWorkbook opens path on fs and parses it as an xlsx workbook.
// The caller must Close the returned file.
func OpenWorkbook(fs afero.Fs, path string) (*excelize.File, error) {
	in, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrOpenWorkbook, "%s (%v)", path, err)
	}
	defer in.Close()

	f, err := excelize.OpenReader(in)
	if err != nil {
		return nil, errors.Wrapf(ErrOpenWorkbook, "%s (%v)", path, err)
	}
	return f, nil
}

// SheetNames returns the workbook's sheet names in workbook order.
func SheetNames(fs afero.Fs, path string) ([]string, error) {
	f, err := OpenWorkbook(fs, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetSheetList(), nil
}
