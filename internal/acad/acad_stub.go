//go:build !windows

// internal/acad/acad_stub.go
package acad

import (
	"plategen-core/layout"
	"plategen-core/part"
)

func draw(_ part.Spec, _ []layout.Point) error {
	return ErrUnavailable
}
