// core/part/part_test.go
package part

import (
	"errors"
	"testing"
)

func TestValidateOK(t *testing.T) {
	s := Spec{Name: "bracket", Length: 120, Width: 80, Margin: 10, HoleDiameter: 6, Rows: 3, Cols: 4}
	if err := s.Validate(); err != nil {
		t.Fatalf("valid spec rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]Spec{
		"zero length":     {Length: 0, Width: 80},
		"negative width":  {Length: 120, Width: -80},
		"negative margin": {Length: 120, Width: 80, Margin: -1},
		"negative hole":   {Length: 120, Width: 80, HoleDiameter: -6},
		"negative rows":   {Length: 120, Width: 80, Rows: -1},
		"negative thick":  {Length: 120, Width: 80, Thickness: -2},
	}
	for name, s := range cases {
		if err := s.Validate(); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("%s: want ErrInvalidDimension, got %v", name, err)
		}
	}
}

func TestNoteFull(t *testing.T) {
	s := Spec{Name: "bracket", Length: 120, Width: 80, Margin: 10, HoleDiameter: 6, Rows: 3, Cols: 4, Material: "Al", Thickness: 2}
	want := "bracket: 120x80 mm | holes 3x4 D6 mm, m=10 | t=2 mm | Al"
	if got := s.Note(); got != want {
		t.Fatalf("note:\n got  %q\n want %q", got, want)
	}
}

func TestNoteMinimal(t *testing.T) {
	s := Spec{Name: "plate", Length: 100, Width: 60}
	if got := s.Note(); got != "plate: 100x60 mm" {
		t.Fatalf("note = %q", got)
	}
}

func TestNoteSkipsZeroDiameterGrid(t *testing.T) {
	// Centers without circles: the note should not advertise holes.
	s := Spec{Name: "plate", Length: 100, Width: 60, Rows: 2, Cols: 2}
	if got := s.Note(); got != "plate: 100x60 mm" {
		t.Fatalf("note = %q", got)
	}
}
