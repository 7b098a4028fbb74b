// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"plategen-core/draw"
	"plategen-core/layout"
	"plategen-core/part"
	"plategen/internal/acad"
	"plategen/internal/batch"
	"plategen/internal/cli"
	"plategen/internal/outfile"
	"plategen/internal/preview"
	"plategen/internal/report"
	"plategen/internal/version"
)

// RunContext parses argv and runs one invocation to completion, writing
// the report to stdout and diagnostics to stderr. Exit codes: 0 success
// (batch runs succeed even with skipped rows), 2 usage or input errors,
// 3 report I/O errors, 130 interrupted.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("plategen")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "plategen version %s\n", version.Version)
		return 0
	}

	if opts.CSVFile != "" || opts.XLSXFile != "" {
		return runBatch(ctx, opts, outw, stderr)
	}
	return runSingle(opts, outw, stderr)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func specFromOptions(o cli.Options) part.Spec {
	return part.Spec{
		Name:         o.Name,
		Length:       o.Length,
		Width:        o.Width,
		Margin:       o.Margin,
		HoleDiameter: o.HoleDiameter,
		Rows:         o.Rows,
		Cols:         o.Cols,
		Material:     o.Material,
		Thickness:    o.Thickness,
		TextHeight:   o.TextHeight,
	}
}

func runSingle(opts cli.Options, out io.Writer, stderr io.Writer) int {
	row, ok := generate(specFromOptions(opts), opts, stderr)
	if !ok {
		_, _ = fmt.Fprintln(stderr, row.Err)
		return 2
	}
	if err := report.Write(opts.Output, out, []report.Row{row}); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func runBatch(ctx context.Context, opts cli.Options, out io.Writer, stderr io.Writer) int {
	var rows []batch.Row
	var err error
	if opts.CSVFile != "" {
		rows, err = batch.LoadCSV(opts.CSVFile)
	} else {
		rows, err = batch.ReadXLSX(opts.XLSXFile)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	results := make([]report.Row, 0, len(rows))
	for _, r := range rows {
		if ctx.Err() != nil {
			_, _ = fmt.Fprintln(stderr, "interrupted")
			return 130
		}
		if r.Err != nil {
			results = append(results, report.Row{Line: r.Line, Name: r.Spec.Name, Err: r.Err.Error()})
			continue
		}
		row, _ := generate(r.Spec, opts, stderr) // failures stay in the report, run continues
		row.Line = r.Line
		results = append(results, row)
	}

	if err := report.Write(opts.Output, out, results); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// generate validates spec, writes its DXF plus the optional preview and
// live draw, and returns the report row. ok is false when validation or
// file emission failed; the optional channels never fail the part.
func generate(spec part.Spec, opts cli.Options, stderr io.Writer) (report.Row, bool) {
	row := report.Row{Name: spec.Name}

	centers, err := layout.Grid(spec)
	if err != nil {
		row.Err = err.Error()
		return row, false
	}

	path, err := outfile.Write(opts.OutDir, spec, draw.Build(spec, centers))
	if err != nil {
		row.Err = err.Error()
		return row, false
	}
	row.File = path
	row.Holes = len(centers)

	if opts.Preview {
		if err := writePreview(path, spec, centers); err != nil {
			_, _ = fmt.Fprintf(stderr, "preview skipped: %v\n", err)
		}
	}
	if opts.DrawLive {
		switch err := acad.Draw(spec, centers); {
		case errors.Is(err, acad.ErrUnavailable):
			_, _ = fmt.Fprintln(stderr, "live draw skipped: AutoCAD binding unavailable; DXF still generated")
		case err != nil:
			_, _ = fmt.Fprintf(stderr, "live draw failed: %v\n", err)
		case !opts.Quiet:
			_, _ = fmt.Fprintln(stderr, "live drawing sent to AutoCAD")
		}
	}
	return row, true
}

func writePreview(dxfPath string, spec part.Spec, centers []layout.Point) error {
	path := strings.TrimSuffix(dxfPath, filepath.Ext(dxfPath)) + ".html"
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := preview.WriteHTML(fh, spec, centers); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
