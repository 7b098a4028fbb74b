// internal/batch/xlsx.go
package batch

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first sheet of an XLSX workbook. Columns and row
// semantics are identical to ReadCSV.
func ReadXLSX(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	recs, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: empty sheet, no header row: %w", path, ErrMissingColumn)
	}
	header := recs[0]
	idx, err := columnIndex(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rows := make([]Row, 0, len(recs)-1)
	for i, rec := range recs[1:] {
		// GetRows drops blank cells at the tail of a row. Pad back to
		// header width so blank optional cells default instead of
		// tripping the missing-cell check.
		if len(rec) < len(header) {
			rec = append(rec, make([]string, len(header)-len(rec))...)
		}
		spec, err := specFromRecord(rec, idx)
		rows = append(rows, Row{Line: i + 2, Spec: spec, Err: err})
	}
	return rows, nil
}
