package omega

import (
	"errors"
	"fmt"
)

// Sampling errors - centralized error definitions
var (
	// ErrInvalidShape reports a negative dimension in a requested sample shape.
	ErrInvalidShape = errors.New("invalid sample shape")

	// ErrCoordinateRange reports a coordinate index outside a batch's rows.
	ErrCoordinateRange = errors.New("coordinate index out of range")
)

// NewInvalidShapeError wraps ErrInvalidShape with the offending dimension.
func NewInvalidShapeError(dim int) error {
	return fmt.Errorf("%w: dimension %d", ErrInvalidShape, dim)
}

// NewCoordinateRangeError wraps ErrCoordinateRange with index and row count.
func NewCoordinateRangeError(idx, rows int) error {
	return fmt.Errorf("%w: index %d, batch has %d rows", ErrCoordinateRange, idx, rows)
}

// IsInvalidShape reports whether err stems from a malformed shape argument.
func IsInvalidShape(err error) bool {
	return errors.Is(err, ErrInvalidShape)
}

// IsCoordinateRange reports whether err stems from an out-of-range coordinate.
func IsCoordinateRange(err error) bool {
	return errors.Is(err, ErrCoordinateRange)
}
