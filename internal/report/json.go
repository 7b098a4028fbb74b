// internal/report/json.go
package report

import (
	"encoding/json"
	"io"
)

func init() { Register(FormatJSON, WriteJSON) }

// WriteJSON writes rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
