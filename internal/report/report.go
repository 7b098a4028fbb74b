// internal/report/report.go

// Package report renders per-part run results in the selected output
// format. Formats are dispatched through a registry (format → writer) so
// new formats register themselves from init().
package report

import (
	"fmt"
	"io"
)

// Row is the outcome for one part: a written file or a skip reason.
// Line is the sheet line for batch runs and 0 for single-part runs.
type Row struct {
	Line  int    `json:"line,omitempty"`
	Name  string `json:"name,omitempty"`
	File  string `json:"file,omitempty"`
	Holes int    `json:"holes"`
	Err   string `json:"error,omitempty"`
}

// Format names accepted by --output.
const (
	FormatText = "text"
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

// Writers maps a format name to its writer. Last registration wins.
var Writers = map[string]func(io.Writer, []Row) error{}

// Register installs a writer for format.
func Register(format string, fn func(io.Writer, []Row) error) { Writers[format] = fn }

// Known reports whether a writer is registered for format.
func Known(format string) bool {
	_, ok := Writers[format]
	return ok
}

// Write dispatches rows to the writer registered for format.
func Write(format string, w io.Writer, rows []Row) error {
	fn, ok := Writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, rows)
}
