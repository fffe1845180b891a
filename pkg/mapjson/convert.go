package mapjson

import (
	"fmt"
	"io"

	"github.com/mapjson/mapjson-go/pkg/mapjson/models"
	"github.com/mapjson/mapjson-go/pkg/mapjson/output"
	"github.com/mapjson/mapjson-go/pkg/mapjson/parser"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// Converter writes one JSON marker document per workbook sheet.
type Converter struct {
	fs      afero.Fs
	stdout  io.Writer
	log     zerolog.Logger
	verbose bool

	readGrid func(f *excelize.File, sheetName string) (models.Grid, error)
}

// New creates a Converter from opts.
func New(opts Options) *Converter {
	return &Converter{
		fs:       opts.fs(),
		stdout:   opts.stdout(),
		log:      opts.logger(),
		verbose:  opts.Verbose,
		readGrid: parser.ReadGrid,
	}
}

// Run converts every sheet of the workbook at path, in workbook order.
// Sheets that cannot be read are reported and skipped; any other error
// aborts the run.
func (c *Converter) Run(path string) (models.RunSummary, error) {
	summary := models.RunSummary{BookPath: path}

	sheetNames, err := SheetNames(c.fs, path)
	if err != nil {
		return summary, err
	}

	for _, sheetName := range sheetNames {
		result, err := c.ConvertSheet(path, sheetName)
		if err != nil {
			var sheetErr *SheetError
			if !errors.As(err, &sheetErr) {
				return summary, err
			}
			c.log.Error().Str("sheet", sheetName).Err(sheetErr.Err).
				Msgf("Failed to read sheet '%s' from the workbook.", sheetName)
			result.Err = err
		}
		summary.Sheets = append(summary.Sheets, result)
	}

	return summary, nil
}

// ConvertSheet converts a single sheet and writes it to
// output.FileName(path, sheetName). The workbook is opened for this sheet
// alone. A sheet that cannot be read yields a *SheetError.
func (c *Converter) ConvertSheet(path, sheetName string) (models.SheetResult, error) {
	result := models.SheetResult{SheetName: sheetName}

	f, err := OpenWorkbook(c.fs, path)
	if err != nil {
		return result, err
	}
	defer f.Close()

	grid, err := c.readGrid(f, sheetName)
	if err != nil {
		return result, NewSheetError(sheetName, err)
	}

	doc, err := output.BuildDocument(grid)
	if err != nil {
		return result, errors.Wrapf(err, "sheet %q", sheetName)
	}

	data, err := output.ToJSON(doc)
	if err != nil {
		return result, errors.Wrapf(err, "failed to serialize sheet %q", sheetName)
	}

	jsonFilename := output.FileName(path, sheetName)
	if err := afero.WriteFile(c.fs, jsonFilename, data, 0644); err != nil {
		return result, errors.Wrapf(ErrWriteOutput, "%s (%v)", jsonFilename, err)
	}

	if c.verbose {
		fmt.Fprintf(c.stdout, "Generated JSON file for sheet '%s': %s\n", sheetName, jsonFilename)
	}

	result.OutputPath = jsonFilename
	result.Records = len(doc.Markers)
	return result, nil
}
