// core/layout/layout.go
package layout

import (
	"fmt"

	"plategen-core/part"
)

// Point is a hole center in plate coordinates (mm, origin at the
// bottom-left plate corner, +y up).
type Point struct {
	X float64
	Y float64
}

// Grid computes the hole centers for spec and validates that the grid
// fits. The result is row-major: rows top-to-bottom, columns
// left-to-right. Pure and deterministic; identical specs yield the
// identical sequence.
//
// Rows==0 or Cols==0 means "no holes" and returns an empty grid, not an
// error. A zero hole diameter still yields Rows*Cols centers; whether
// anything is drawn for them is the caller's concern.
func Grid(spec part.Spec) ([]Point, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if !spec.HolesRequested() {
		return nil, nil
	}

	iw := spec.Length - 2*spec.Margin
	ih := spec.Width - 2*spec.Margin
	if iw <= 0 || ih <= 0 {
		return nil, fmt.Errorf("margin %g too large: no interior space for holes: %w", spec.Margin, part.ErrGridOverflow)
	}
	if spec.Rows == 1 && spec.Cols == 1 && (spec.HoleDiameter > iw || spec.HoleDiameter > ih) {
		return nil, fmt.Errorf("single hole D%g does not fit the %gx%g mm interior: %w",
			spec.HoleDiameter, iw, ih, part.ErrGridOverflow)
	}

	// Even spacing across the interior; a touching pair (spacing ==
	// diameter) is allowed, overlap is not.
	var dx, dy float64
	if spec.Cols > 1 {
		dx = iw / float64(spec.Cols-1)
		if dx < spec.HoleDiameter {
			return nil, fmt.Errorf("column spacing %.4g mm below hole diameter %g mm: %w",
				dx, spec.HoleDiameter, part.ErrHoleOverlap)
		}
	}
	if spec.Rows > 1 {
		dy = ih / float64(spec.Rows-1)
		if dy < spec.HoleDiameter {
			return nil, fmt.Errorf("row spacing %.4g mm below hole diameter %g mm: %w",
				dy, spec.HoleDiameter, part.ErrHoleOverlap)
		}
	}

	pts := make([]Point, 0, spec.Rows*spec.Cols)
	for r := 0; r < spec.Rows; r++ {
		y := spec.Margin + ih/2 // single row sits on the interior midline
		if spec.Rows > 1 {
			y = spec.Width - spec.Margin - dy*float64(r)
		}
		for c := 0; c < spec.Cols; c++ {
			x := spec.Margin + iw/2
			if spec.Cols > 1 {
				x = spec.Margin + dx*float64(c)
			}
			pts = append(pts, Point{X: x, Y: y})
		}
	}
	return pts, nil
}
