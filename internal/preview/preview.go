// internal/preview/preview.go

// Package preview renders an HTML scatter view of a plate layout so a
// batch can be eyeballed without opening a CAD application.
package preview

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"plategen-core/layout"
	"plategen-core/part"
)

// WriteHTML renders the preview for spec: the four plate corners as one
// series, the hole centers as another, both on value axes in mm.
func WriteHTML(w io.Writer, spec part.Spec, centers []layout.Point) error {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: spec.Name, Subtitle: spec.Note()}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x (mm)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y (mm)", Type: "value"}),
	)

	corners := []opts.ScatterData{
		{Value: []interface{}{0.0, 0.0}},
		{Value: []interface{}{spec.Length, 0.0}},
		{Value: []interface{}{spec.Length, spec.Width}},
		{Value: []interface{}{0.0, spec.Width}},
	}
	holes := make([]opts.ScatterData, 0, len(centers))
	for _, p := range centers {
		holes = append(holes, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
	}

	sc.AddSeries("plate", corners)
	sc.AddSeries("holes", holes)
	return sc.Render(w)
}
