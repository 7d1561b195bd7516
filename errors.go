package letters

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a model is built from malformed input:
// a triangle index outside the vertex list, a tristrip with fewer than three
// points, or more vertices than 16-bit indices can address.
//
// Construction errors are reported as *GeometryError, which unwraps to
// ErrInvalidGeometry:
//
//	if errors.Is(err, letters.ErrInvalidGeometry) { ... }
var ErrInvalidGeometry = errors.New("letters: invalid geometry")

// GeometryError describes why a model could not be built.
type GeometryError struct {
	// Op is the constructor or operator that rejected the input.
	Op string
	// Reason is a short human-readable explanation.
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("letters: %s: %s", e.Op, e.Reason)
}

// Unwrap returns ErrInvalidGeometry.
func (e *GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}

func geometryErrorf(op, format string, args ...any) error {
	return &GeometryError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
