// core/dxf/encode.go
package dxf

import (
	"bufio"
	"io"
	"strconv"
)

// tagWriter emits DXF group code / value pairs, one per line, and latches
// the first write error.
type tagWriter struct {
	w   *bufio.Writer
	err error
}

func (t *tagWriter) tag(code int, value string) {
	if t.err != nil {
		return
	}
	if _, err := t.w.WriteString(strconv.Itoa(code) + "\n" + value + "\n"); err != nil {
		t.err = err
	}
}

func (t *tagWriter) num(code, v int) { t.tag(code, strconv.Itoa(v)) }

func (t *tagWriter) real(code int, v float64) {
	t.tag(code, strconv.FormatFloat(v, 'f', -1, 64))
}

// Encode writes the document as ASCII DXF. Tag order is fixed, so equal
// documents encode byte-for-byte equal.
func (d *Document) Encode(w io.Writer) error {
	t := &tagWriter{w: bufio.NewWriter(w)}

	t.tag(0, "SECTION")
	t.tag(2, "HEADER")
	t.tag(9, "$ACADVER")
	t.tag(1, "AC1015")
	t.tag(9, "$INSUNITS")
	t.num(70, d.InsUnits)
	t.tag(0, "ENDSEC")

	t.tag(0, "SECTION")
	t.tag(2, "TABLES")
	t.tag(0, "TABLE")
	t.tag(2, "LAYER")
	t.num(70, len(d.Layers))
	for _, l := range d.Layers {
		t.tag(0, "LAYER")
		t.tag(2, l.Name)
		t.num(70, 0)
		t.num(62, l.Color)
		t.tag(6, "CONTINUOUS")
	}
	t.tag(0, "ENDTAB")
	t.tag(0, "ENDSEC")

	t.tag(0, "SECTION")
	t.tag(2, "ENTITIES")
	for _, e := range d.Entities {
		e.appendTags(t)
	}
	t.tag(0, "ENDSEC")
	t.tag(0, "EOF")

	if t.err != nil {
		return t.err
	}
	return t.w.Flush()
}

func (l Line) appendTags(t *tagWriter) {
	t.tag(0, "LINE")
	t.tag(8, l.Layer)
	t.real(10, l.X1)
	t.real(20, l.Y1)
	t.real(11, l.X2)
	t.real(21, l.Y2)
}

func (c Circle) appendTags(t *tagWriter) {
	t.tag(0, "CIRCLE")
	t.tag(8, c.Layer)
	t.real(10, c.X)
	t.real(20, c.Y)
	t.real(40, c.Radius)
}

func (x Text) appendTags(t *tagWriter) {
	t.tag(0, "TEXT")
	t.tag(8, x.Layer)
	t.real(10, x.X)
	t.real(20, x.Y)
	t.real(40, x.Height)
	t.tag(1, x.Value)
}
