// Package mapjson converts workbook sheets into JSON marker documents.
package mapjson

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options configures conversion behavior.
type Options struct {
	// Verbose prints a confirmation line for every generated file.
	Verbose bool
	// Fs is the filesystem workbooks are read from and JSON files written to.
	// If nil, the OS filesystem is used.
	Fs afero.Fs
	// Stdout receives verbose confirmation lines. If nil, os.Stdout is used.
	Stdout io.Writer
	// Logger receives per-sheet diagnostics. If nil, a console logger on
	// os.Stderr is used.
	Logger *zerolog.Logger
}

func (o Options) fs() afero.Fs {
	if o.Fs != nil {
		return o.Fs
	}
	return afero.NewOsFs()
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return NewConsoleLogger(os.Stderr)
}

// NewConsoleLogger returns a logger writing one human-readable line per event.
func NewConsoleLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	})
}
