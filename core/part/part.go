// core/part/part.go
package part

import (
	"fmt"
	"strings"
)

// Defaults applied by the CLI and the batch readers when a value is absent.
const (
	DefaultMargin     = 10.0
	DefaultTextHeight = 3.0
)

// Spec describes one rectangular plate with an optional hole grid.
// All linear dimensions are millimeters. A Spec is built once from
// validated input and never mutated afterwards.
type Spec struct {
	Name         string
	Length       float64
	Width        float64
	Margin       float64 // uniform inset on all four sides
	HoleDiameter float64 // 0 = centers computed but no circles drawn
	Rows         int     // 0 = no holes
	Cols         int     // 0 = no holes
	Material     string
	Thickness    float64 // note only, not drawn
	TextHeight   float64 // 0 = DefaultTextHeight at draw time
}

// HolesRequested reports whether the spec asks for a hole grid at all.
func (s Spec) HolesRequested() bool { return s.Rows > 0 && s.Cols > 0 }

// Validate checks the scalar invariants. Geometric feasibility (interior
// space, spacing) is checked by layout.Grid, which needs the derived
// quantities anyway.
func (s Spec) Validate() error {
	if s.Length <= 0 || s.Width <= 0 {
		return fmt.Errorf("length and width must be > 0 (got %gx%g): %w", s.Length, s.Width, ErrInvalidDimension)
	}
	if s.Margin < 0 {
		return fmt.Errorf("margin must be >= 0 (got %g): %w", s.Margin, ErrInvalidDimension)
	}
	if s.HoleDiameter < 0 {
		return fmt.Errorf("hole diameter must be >= 0 (got %g): %w", s.HoleDiameter, ErrInvalidDimension)
	}
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("rows and cols cannot be negative (got %dx%d): %w", s.Rows, s.Cols, ErrInvalidDimension)
	}
	if s.Thickness < 0 {
		return fmt.Errorf("thickness must be >= 0 (got %g): %w", s.Thickness, ErrInvalidDimension)
	}
	if s.TextHeight < 0 {
		return fmt.Errorf("text height must be >= 0 (got %g): %w", s.TextHeight, ErrInvalidDimension)
	}
	return nil
}

// Note returns the single-line annotation placed on the ANNOTATIONS layer,
// e.g. "bracket: 120x80 mm | holes 3x4 D6 mm, m=10 | t=2 mm | Al".
// Optional segments appear only when the corresponding field is set.
func (s Spec) Note() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %gx%g mm", s.Name, s.Length, s.Width)
	if s.HolesRequested() && s.HoleDiameter > 0 {
		fmt.Fprintf(&b, " | holes %dx%d D%g mm, m=%g", s.Rows, s.Cols, s.HoleDiameter, s.Margin)
	}
	if s.Thickness > 0 {
		fmt.Fprintf(&b, " | t=%g mm", s.Thickness)
	}
	if s.Material != "" {
		fmt.Fprintf(&b, " | %s", s.Material)
	}
	return b.String()
}
