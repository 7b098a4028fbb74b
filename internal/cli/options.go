// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"plategen/internal/report"
	"plategen/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Single-part parameters
	Name         string
	Length       float64
	Width        float64
	Margin       float64
	HoleDiameter float64
	Rows         int
	Cols         int
	Material     string
	Thickness    float64
	TextHeight   float64

	// Batch input
	CSVFile  string
	XLSXFile string

	// Output
	OutDir  string
	Output  string
	Preview bool
	Quiet   bool

	// Side channel
	DrawLive bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: parametric DXF plate generator

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Part parameters
	fs.StringVar(&opt.Name, "name", "plate", "part name used in the note and file name [plate]")
	fs.Float64Var(&opt.Length, "length", 0, "plate length in mm [*]")
	fs.Float64Var(&opt.Width, "width", 0, "plate width in mm [*]")
	fs.Float64Var(&opt.Margin, "margin", 10, "uniform margin around the hole grid in mm [10]")
	fs.Float64Var(&opt.HoleDiameter, "hole-diameter", 0, "hole diameter in mm (0 = no holes) [0]")
	fs.IntVar(&opt.Rows, "rows", 0, "number of hole rows (0 = no holes) [0]")
	fs.IntVar(&opt.Cols, "cols", 0, "number of hole columns (0 = no holes) [0]")
	fs.StringVar(&opt.Material, "material", "", "material note, e.g. MS/Al/SS")
	fs.Float64Var(&opt.Thickness, "thickness", 0, "thickness note in mm [0]")
	fs.Float64Var(&opt.TextHeight, "text-height", 3, "annotation text height in mm [3]")

	// Batch input
	fs.StringVar(&opt.CSVFile, "csv", "", "CSV sheet for batch generation")
	fs.StringVar(&opt.XLSXFile, "xlsx", "", "XLSX workbook for batch generation (first sheet)")

	// Output
	fs.StringVar(&opt.OutDir, "out-dir", "outputs", "directory for generated files [outputs]")
	fs.StringVar(&opt.Output, "output", report.FormatText, "report format: text | tsv | json ["+report.FormatText+"]")
	fs.BoolVar(&opt.Preview, "preview", false, "also write an HTML layout preview next to the DXF [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-error diagnostics [false]")

	// Side channel
	fs.BoolVar(&opt.DrawLive, "draw-live", false, "mirror geometry into a running AutoCAD session [false]")

	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "help", false, "show help")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if err := validate(opt); err != nil {
		return opt, err
	}
	return opt, nil
}

func validate(o Options) error {
	if o.CSVFile != "" && o.XLSXFile != "" {
		return errors.New("--csv and --xlsx are mutually exclusive")
	}
	if o.CSVFile == "" && o.XLSXFile == "" && (o.Length == 0 || o.Width == 0) {
		return errors.New("--length and --width are required for single-part mode (or use --csv/--xlsx)")
	}
	if !report.Known(o.Output) {
		return fmt.Errorf("invalid --output %q (text | tsv | json)", o.Output)
	}
	return nil
}
