package ndarray

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrShapeMismatch   = errors.New("shape mismatch")
)

// IndexError reports a bounds-checked index that fell outside its dimension.
type IndexError struct {
	Dim    int // Dimension that was indexed
	Index  int // Offending index
	Extent int // Extent of that dimension
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", e.Index, e.Dim, e.Extent)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) hold for every IndexError.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
