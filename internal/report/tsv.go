// internal/report/tsv.go
package report

import (
	"fmt"
	"io"
)

// TSVHeader is the canonical header row for tsv output. Keep this as the
// single source of truth.
const TSVHeader = "line\tname\tfile\tholes\tstatus\terror"

func init() { Register(FormatTSV, WriteTSV) }

// WriteTSV writes rows as a tab-delimited table.
func WriteTSV(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		status := "ok"
		if r.Err != "" {
			status = "skipped"
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
			r.Line, r.Name, r.File, r.Holes, status, r.Err); err != nil {
			return err
		}
	}
	return nil
}
