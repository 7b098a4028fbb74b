// internal/report/text.go
package report

import (
	"fmt"
	"io"
)

func init() { Register(FormatText, WriteText) }

// WriteText prints one human-readable line per part. Batch rows carry
// their sheet line; single-part rows use the original's short form.
func WriteText(w io.Writer, rows []Row) error {
	for _, r := range rows {
		var err error
		switch {
		case r.Line > 0 && r.Err != "":
			_, err = fmt.Fprintf(w, "line %d: SKIPPED -> %s\n", r.Line, r.Err)
		case r.Line > 0:
			_, err = fmt.Fprintf(w, "line %d: OK -> %s\n", r.Line, r.File)
		default:
			_, err = fmt.Fprintf(w, "DXF written: %s\n", r.File)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
