// internal/acad/acad.go

// Package acad mirrors generated geometry into a live AutoCAD session.
// The COM binding only exists on windows; everywhere else Draw reports
// ErrUnavailable and callers fall back to file-only output.
package acad

import (
	"errors"

	"plategen-core/layout"
	"plategen-core/part"
)

// ErrUnavailable means no automation binding can be reached on this
// platform or no AutoCAD instance is running. It is always non-fatal.
var ErrUnavailable = errors.New("live draw unavailable")

// Draw sends the plate outline and hole circles for spec to a running
// AutoCAD instance. The DXF on disk is the source of truth; this is a
// best-effort mirror.
func Draw(spec part.Spec, centers []layout.Point) error {
	return draw(spec, centers)
}
