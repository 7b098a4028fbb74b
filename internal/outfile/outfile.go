// internal/outfile/outfile.go

// Package outfile names and writes the generated drawing files.
package outfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"plategen-core/dxf"
	"plategen-core/part"
)

// DefaultDir is where drawings land unless --out-dir says otherwise.
const DefaultDir = "outputs"

// Filename derives the output name from the part parameters:
// name_LxW[_rRcC_dD_mM][_tT][_material].dxf. Numbers are truncated to
// integers and spaces become underscores, so the name stays shell-safe.
func Filename(spec part.Spec) string {
	base := fmt.Sprintf("%s_%dx%d", spec.Name, int(spec.Length), int(spec.Width))
	if spec.HolesRequested() && spec.HoleDiameter > 0 {
		base += fmt.Sprintf("_r%dc%d_d%d_m%d", spec.Rows, spec.Cols, int(spec.HoleDiameter), int(spec.Margin))
	}
	if spec.Thickness > 0 {
		base += fmt.Sprintf("_t%d", int(spec.Thickness))
	}
	if spec.Material != "" {
		base += "_" + spec.Material
	}
	return strings.ReplaceAll(base, " ", "_") + ".dxf"
}

// Write encodes doc into dir/Filename(spec), creating dir if needed, and
// returns the written path.
func Write(dir string, spec part.Spec, doc *dxf.Document) (string, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, Filename(spec))
	fh, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := doc.Encode(fh); err != nil {
		_ = fh.Close()
		return "", err
	}
	if err := fh.Close(); err != nil {
		return "", err
	}
	return path, nil
}
