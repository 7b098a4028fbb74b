//go:build windows

// internal/acad/acad_windows.go
package acad

import (
	"fmt"
	"strings"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"plategen-core/layout"
	"plategen-core/part"
)

const progID = "AutoCAD.Application"

func draw(spec part.Spec, centers []layout.Point) error {
	if err := ole.CoInitialize(0); err != nil {
		return fmt.Errorf("%w: COM init: %v", ErrUnavailable, err)
	}
	defer ole.CoUninitialize()

	app, err := connect()
	if err != nil {
		return err
	}
	defer app.Release()

	_, _ = oleutil.PutProperty(app, "Visible", true)

	doc, err := activeDocument(app)
	if err != nil {
		return err
	}
	defer doc.Release()

	// Geometry goes in as a command script: spaces terminate input, two
	// spaces close the LINE command. This avoids SAFEARRAY point
	// marshalling entirely.
	var sb strings.Builder
	seg := func(x1, y1, x2, y2 float64) {
		fmt.Fprintf(&sb, "_.LINE %g,%g %g,%g  ", x1, y1, x2, y2)
	}
	seg(0, 0, spec.Length, 0)
	seg(spec.Length, 0, spec.Length, spec.Width)
	seg(spec.Length, spec.Width, 0, spec.Width)
	seg(0, spec.Width, 0, 0)
	if spec.HoleDiameter > 0 {
		r := spec.HoleDiameter / 2
		for _, p := range centers {
			fmt.Fprintf(&sb, "_.CIRCLE %g,%g %g ", p.X, p.Y, r)
		}
	}

	if _, err := oleutil.CallMethod(doc, "SendCommand", sb.String()); err != nil {
		return fmt.Errorf("send command: %v", err)
	}
	return nil
}

// connect attaches to a running AutoCAD instance, starting one if none
// is registered and running.
func connect() (*ole.IDispatch, error) {
	if unknown, err := oleutil.GetActiveObject(progID); err == nil {
		if disp, err := unknown.QueryInterface(ole.IID_IDispatch); err == nil {
			return disp, nil
		}
		unknown.Release()
	}
	unknown, err := oleutil.CreateObject(progID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	disp, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		unknown.Release()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return disp, nil
}

// activeDocument returns the active document, creating one when the
// application just started with none open.
func activeDocument(app *ole.IDispatch) (*ole.IDispatch, error) {
	if v, err := oleutil.GetProperty(app, "ActiveDocument"); err == nil {
		return v.ToIDispatch(), nil
	}
	docs, err := oleutil.GetProperty(app, "Documents")
	if err != nil {
		return nil, fmt.Errorf("%w: no documents collection: %v", ErrUnavailable, err)
	}
	d := docs.ToIDispatch()
	defer d.Release()
	added, err := oleutil.CallMethod(d, "Add")
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open a document: %v", ErrUnavailable, err)
	}
	return added.ToIDispatch(), nil
}
