// Package dxf builds and encodes minimal ASCII DXF (AC1015) drawings.
//
// The model is deliberately small: a layer table plus LINE, CIRCLE and
// TEXT entities in insertion order. That is the entire vocabulary a plate
// drawing needs, and keeping the encoder in-repo makes the output
// byte-deterministic for a given document.
package dxf

// Layer names used by plategen drawings.
const (
	LayerOuter       = "OUTER"
	LayerHoles       = "HOLES"
	LayerAnnotations = "ANNOTATIONS"
)

// UnitsMillimeters is the $INSUNITS header value for millimeters.
const UnitsMillimeters = 4

// Layer is one entry of the LAYER table.
type Layer struct {
	Name  string
	Color int // AutoCAD color index
}

// Entity is anything that can live in the ENTITIES section.
type Entity interface {
	appendTags(t *tagWriter)
}

// Line is a straight segment on a layer.
type Line struct {
	Layer          string
	X1, Y1, X2, Y2 float64
}

// Circle is a full circle on a layer.
type Circle struct {
	Layer  string
	X, Y   float64
	Radius float64
}

// Text is a single-line text entity.
type Text struct {
	Layer  string
	X, Y   float64
	Height float64
	Value  string
}

// Document is an in-memory drawing: header units, layer table and
// entities in insertion order.
type Document struct {
	InsUnits int
	Layers   []Layer
	Entities []Entity
}

// NewDocument returns a millimeter drawing with the three standard
// plategen layers: OUTER (white), HOLES (red), ANNOTATIONS (green).
func NewDocument() *Document {
	return &Document{
		InsUnits: UnitsMillimeters,
		Layers: []Layer{
			{Name: LayerOuter, Color: 7},
			{Name: LayerHoles, Color: 1},
			{Name: LayerAnnotations, Color: 3},
		},
	}
}

func (d *Document) AddLine(layer string, x1, y1, x2, y2 float64) {
	d.Entities = append(d.Entities, Line{Layer: layer, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (d *Document) AddCircle(layer string, x, y, radius float64) {
	d.Entities = append(d.Entities, Circle{Layer: layer, X: x, Y: y, Radius: radius})
}

func (d *Document) AddText(layer string, x, y, height float64, value string) {
	d.Entities = append(d.Entities, Text{Layer: layer, X: x, Y: y, Height: height, Value: value})
}
