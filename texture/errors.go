package texture

import (
	"errors"
	"fmt"
)

// ErrInvalidTextureParams is returned when a generator is asked for a
// texture it cannot build.
var ErrInvalidTextureParams = errors.New("texture: invalid parameters")

// ParamsError describes which generator parameter was rejected.
type ParamsError struct {
	Param string
	Value int
	// Reason is a short human-readable explanation.
	Reason string
}

func (e *ParamsError) Error() string {
	return fmt.Sprintf("texture: %s=%d: %s", e.Param, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidTextureParams.
func (e *ParamsError) Unwrap() error {
	return ErrInvalidTextureParams
}
