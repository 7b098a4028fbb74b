// internal/app/app_test.go
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runApp(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestSinglePartRun(t *testing.T) {
	dir := t.TempDir()
	code, stdout, stderr := runApp(t,
		"--name", "bracket",
		"--length", "120", "--width", "80",
		"--margin", "10", "--hole-diameter", "6",
		"--rows", "3", "--cols", "4",
		"--out-dir", dir,
	)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	want := filepath.Join(dir, "bracket_120x80_r3c4_d6_m10.dxf")
	if !strings.Contains(stdout, "DXF written: "+want) {
		t.Fatalf("stdout = %q", stdout)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("missing output file: %v", err)
	}
}

func TestSinglePartValidationError(t *testing.T) {
	code, _, stderr := runApp(t,
		"--length", "40", "--width", "40",
		"--margin", "25",
		"--hole-diameter", "5", "--rows", "2", "--cols", "2",
		"--out-dir", t.TempDir(),
	)
	if code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
	if !strings.Contains(stderr, "margin") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestBatchRunSkipsBadRows(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "parts.csv")
	sheet := "name,length,width,margin,hole_diameter,rows,cols,material,thickness\n" +
		"a,120,80,10,6,3,4,Al,2\n" +
		"bad,abc,80,10,6,3,4,,\n" +
		"c,150,90,8,5,3,5,MS,3\n"
	if err := os.WriteFile(csvPath, []byte(sheet), 0o644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runApp(t, "--csv", csvPath, "--out-dir", dir)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "line 2: OK -> ") ||
		!strings.Contains(stdout, "line 3: SKIPPED -> ") ||
		!strings.Contains(stdout, "line 4: OK -> ") {
		t.Fatalf("stdout = %q", stdout)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.dxf"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("want 2 drawings, got %v", files)
	}
}

func TestBatchMissingColumnFailsWholeFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "parts.csv")
	sheet := "name,length,width\np,100,60\n"
	if err := os.WriteFile(csvPath, []byte(sheet), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, stderr := runApp(t, "--csv", csvPath, "--out-dir", dir)
	if code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
	if !strings.Contains(stderr, "missing column") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestBatchCSVNotFound(t *testing.T) {
	code, _, stderr := runApp(t, "--csv", filepath.Join(t.TempDir(), "nope.csv"))
	if code != 2 {
		t.Fatalf("exit = %d, want 2 (stderr %q)", code, stderr)
	}
}

func TestJSONReport(t *testing.T) {
	dir := t.TempDir()
	code, stdout, stderr := runApp(t,
		"--length", "100", "--width", "60",
		"--out-dir", dir, "--output", "json",
	)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, `"file"`) || !strings.Contains(stdout, "plate_100x60.dxf") {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestDrawLiveFallsBackToFileOnly(t *testing.T) {
	// On platforms without the COM binding the run must still succeed
	// and say why the mirror was skipped.
	dir := t.TempDir()
	code, stdout, stderr := runApp(t,
		"--length", "100", "--width", "60",
		"--draw-live", "--out-dir", dir,
	)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "DXF written: ") {
		t.Fatalf("stdout = %q", stdout)
	}
	if strings.Contains(stderr, "skipped") == strings.Contains(stderr, "sent to AutoCAD") {
		t.Fatalf("expected exactly one live-draw outcome, stderr = %q", stderr)
	}
}

func TestPreviewWritten(t *testing.T) {
	dir := t.TempDir()
	code, _, stderr := runApp(t,
		"--name", "p",
		"--length", "100", "--width", "60",
		"--hole-diameter", "5", "--rows", "2", "--cols", "2",
		"--preview", "--out-dir", dir,
	)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "p_100x60_r2c2_d5_m10.html")); err != nil {
		t.Fatalf("missing preview: %v", err)
	}
}

func TestVersionFlag(t *testing.T) {
	code, stdout, _ := runApp(t, "--version")
	if code != 0 || !strings.HasPrefix(stdout, "plategen version ") {
		t.Fatalf("code=%d stdout=%q", code, stdout)
	}
}

func TestNoArgsPrintsUsage(t *testing.T) {
	code, stdout, _ := runApp(t)
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(stdout, "Usage of plategen") {
		t.Fatalf("stdout = %q", stdout)
	}
}
