package mapforge

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError reports a malformed .map file at a specific line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("map parse error at line %d: %s", e.Line, e.Msg)
}

// DegenerateGeometryError reports a 3-plane system (or other geometric
// construction) that failed to produce a usable result: parallel/coplanar
// planes, a split that collapsed a half-face below 3 vertices, and similar.
// Planes carries whichever of the offending planes are known; Detail covers
// cases where there's no clean plane triple to report.
type DegenerateGeometryError struct {
	Planes [3]*MapPlane
	Detail string
}

func (e *DegenerateGeometryError) Error() string {
	if e.Detail != "" {
		return "degenerate geometry: " + e.Detail
	}
	return "degenerate geometry: planes do not intersect at a single point"
}

// InvariantViolationError reports a self-check failure: a condition the
// pipeline asserts at construction time (e.g. a Brush with no faces, BSP
// recursion with no unused polygon) that should be impossible given correct
// inputs and correct code.
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return "invariant violation: " + e.Detail
}

// wrapf attaches op context to err using pkg/errors, the same wrapping style
// the rest of the pipeline uses so that a single failure deep in brush union
// or BSP construction carries its full call path to the top-level error log.
func wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
