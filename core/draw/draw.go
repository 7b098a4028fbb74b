// Package draw composes a part spec and its hole grid into a DXF
// document: outline on OUTER, circles on HOLES, one parameter note on
// ANNOTATIONS.
package draw

import (
	"plategen-core/dxf"
	"plategen-core/layout"
	"plategen-core/part"
)

// Build returns the drawing for spec. centers must come from
// layout.Grid(spec); Build itself performs no validation.
func Build(spec part.Spec, centers []layout.Point) *dxf.Document {
	doc := dxf.NewDocument()

	doc.AddLine(dxf.LayerOuter, 0, 0, spec.Length, 0)
	doc.AddLine(dxf.LayerOuter, spec.Length, 0, spec.Length, spec.Width)
	doc.AddLine(dxf.LayerOuter, spec.Length, spec.Width, 0, spec.Width)
	doc.AddLine(dxf.LayerOuter, 0, spec.Width, 0, 0)

	if spec.HoleDiameter > 0 {
		r := spec.HoleDiameter / 2
		for _, p := range centers {
			doc.AddCircle(dxf.LayerHoles, p.X, p.Y, r)
		}
	}

	h := spec.TextHeight
	if h <= 0 {
		h = part.DefaultTextHeight
	}
	// Note sits just outside the top-right plate corner.
	doc.AddText(dxf.LayerAnnotations, spec.Length+5, spec.Width-5, h, spec.Note())

	return doc
}
