// internal/batch/xlsx_test.go
package batch

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows ...[]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "parts.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeWorkbook(t,
		[]interface{}{"name", "length", "width", "margin", "hole_diameter", "rows", "cols", "material", "thickness"},
		[]interface{}{"bracket", 120, 80, 10, 6, 3, 4, "Al", 2},
		[]interface{}{"bad", "x", 60, 10, 6, 2, 2, "", 0},
	)
	rows, err := ReadXLSX(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if rows[0].Err != nil {
		t.Fatalf("good row rejected: %v", rows[0].Err)
	}
	got := rows[0].Spec
	if got.Name != "bracket" || got.Length != 120 || got.Rows != 3 || got.Material != "Al" {
		t.Fatalf("spec mismatch: %+v", got)
	}
	if rows[1].Err == nil {
		t.Fatal("row with non-numeric length should be rejected")
	}
}

func TestReadXLSXBlankTrailingCellsDefault(t *testing.T) {
	// A workbook row whose trailing optional cells are blank comes back
	// from GetRows shorter than the header; it must still parse with
	// the usual defaults, not be skipped as a short row.
	path := writeWorkbook(t,
		[]interface{}{"name", "length", "width", "margin", "hole_diameter", "rows", "cols", "material", "thickness"},
		[]interface{}{"flange", 150, 90, 8, 5, 3, 5},
	)
	rows, err := ReadXLSX(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(rows))
	}
	if rows[0].Err != nil {
		t.Fatalf("row with blank material/thickness rejected: %v", rows[0].Err)
	}
	got := rows[0].Spec
	if got.Name != "flange" || got.Length != 150 || got.Cols != 5 {
		t.Fatalf("spec mismatch: %+v", got)
	}
	if got.Material != "" || got.Thickness != 0 {
		t.Fatalf("blank optional cells should default: %+v", got)
	}
}

func TestReadXLSXMissingHeader(t *testing.T) {
	path := writeWorkbook(t,
		[]interface{}{"name", "length", "width"},
		[]interface{}{"p", 100, 60},
	)
	_, err := ReadXLSX(path)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("want ErrMissingColumn, got %v", err)
	}
}
