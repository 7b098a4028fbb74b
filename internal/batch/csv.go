// internal/batch/csv.go

// Package batch reads part specs from CSV or XLSX sheets, one part per
// row. Row failures are isolated: a bad row is carried as a Row with Err
// set so the caller can skip-and-report it without aborting the run.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"plategen-core/part"
)

// Required columns, matched case-insensitively against the header row.
var Required = []string{
	"name", "length", "width", "margin", "hole_diameter",
	"rows", "cols", "material", "thickness",
}

// ErrMissingColumn reports a header without a required column, or a row
// shorter than the header.
var ErrMissingColumn = errors.New("missing column")

// Row is one parsed sheet row: either a usable Spec or the error that
// rejected it. Line is 1-based and counts the header as line 1.
type Row struct {
	Line int
	Spec part.Spec
	Err  error
}

// LoadCSV reads path as a batch sheet.
func LoadCSV(path string) ([]Row, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	rows, err := ReadCSV(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ReadCSV parses a header-plus-rows CSV sheet. A missing required header
// fails the whole sheet; everything after that is per-row.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are a per-row error, not a file error
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty sheet, no header row: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, err
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rows = append(rows, Row{Line: line, Err: err})
			continue
		}
		spec, err := specFromRecord(rec, idx)
		rows = append(rows, Row{Line: line, Spec: spec, Err: err})
	}
	return rows, nil
}

// columnIndex maps lower-cased header names to their positions and
// verifies every required column is present.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range Required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("header lacks %q: %w", col, ErrMissingColumn)
		}
	}
	return idx, nil
}

// specFromRecord builds a Spec from one record. Empty cells fall back to
// the same defaults the original sheet format used: name "part", margin
// 10, everything else 0. length and width must be present.
func specFromRecord(rec []string, idx map[string]int) (part.Spec, error) {
	cell := func(col string) (string, error) {
		i := idx[col]
		if i >= len(rec) {
			return "", fmt.Errorf("row has no %s cell: %w", col, ErrMissingColumn)
		}
		return strings.TrimSpace(rec[i]), nil
	}
	reqFloat := func(col string) (float64, error) {
		s, err := cell(col)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("bad %s %q", col, s)
		}
		return v, nil
	}
	optFloat := func(col string, def float64) (float64, error) {
		s, err := cell(col)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return def, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("bad %s %q", col, s)
		}
		return v, nil
	}
	optInt := func(col string) (int, error) {
		s, err := cell(col)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("bad %s %q", col, s)
		}
		return v, nil
	}

	var spec part.Spec
	var err error

	if spec.Name, err = cell("name"); err != nil {
		return part.Spec{}, err
	}
	if spec.Name == "" {
		spec.Name = "part"
	}
	if spec.Length, err = reqFloat("length"); err != nil {
		return part.Spec{}, err
	}
	if spec.Width, err = reqFloat("width"); err != nil {
		return part.Spec{}, err
	}
	if spec.Margin, err = optFloat("margin", part.DefaultMargin); err != nil {
		return part.Spec{}, err
	}
	if spec.HoleDiameter, err = optFloat("hole_diameter", 0); err != nil {
		return part.Spec{}, err
	}
	if spec.Rows, err = optInt("rows"); err != nil {
		return part.Spec{}, err
	}
	if spec.Cols, err = optInt("cols"); err != nil {
		return part.Spec{}, err
	}
	if spec.Material, err = cell("material"); err != nil {
		return part.Spec{}, err
	}
	if spec.Thickness, err = optFloat("thickness", 0); err != nil {
		return part.Spec{}, err
	}
	return spec, nil
}
