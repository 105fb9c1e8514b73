package wire

import (
	"errors"
	"fmt"
)

// ErrShortBuffer is returned by Reader when a field extends past the end of
// the input.
var ErrShortBuffer = errors.New("wire: unexpected end of data")

// LengthError is returned when a field does not have its declared width.
//
// It always indicates a caller bug: frames are never truncated or padded to
// make a field fit.
type LengthError struct {
	Field    string // Field name (e.g., "source", "proof", "frame")
	Expected int    // Declared width (or maximum, for optional fields)
	Got      int    // Actual width supplied
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("wire: %s must be %d bytes, got %d", e.Field, e.Expected, e.Got)
}
