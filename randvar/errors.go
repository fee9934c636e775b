package randvar

import (
	"errors"
	"fmt"
)

// Composition errors - centralized error definitions
var (
	// ErrNotRandomizable reports an operand that is neither a Variable nor a
	// plain numeric/boolean value.
	ErrNotRandomizable = errors.New("value cannot be randomized")

	// ErrUnsupportedFunc reports a registry lookup for a function outside the
	// enumerated elementwise set.
	ErrUnsupportedFunc = errors.New("unsupported elementwise function")

	// ErrNoOperands reports a composed node built with an empty operand list.
	ErrNoOperands = errors.New("composed variable requires at least one operand")
)

// NewNotRandomizableError wraps ErrNotRandomizable with the offending type.
func NewNotRandomizableError(v any) error {
	return fmt.Errorf("%w: %T", ErrNotRandomizable, v)
}

// NewUnsupportedFuncError wraps ErrUnsupportedFunc with the requested name.
func NewUnsupportedFuncError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedFunc, name)
}

// IsNotRandomizable reports whether err stems from a non-randomizable operand.
func IsNotRandomizable(err error) bool {
	return errors.Is(err, ErrNotRandomizable)
}

// IsUnsupportedFunc reports whether err stems from an unknown function name.
func IsUnsupportedFunc(err error) bool {
	return errors.Is(err, ErrUnsupportedFunc)
}
