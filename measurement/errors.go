package measurement

import "github.com/cockroachdb/errors"

var (
	// ErrUndefinedPropagation is returned when relative uncertainty is
	// undefined because an operand's value is exactly zero.
	ErrUndefinedPropagation = errors.New("measurement: undefined uncertainty propagation")

	// ErrModelMismatch is returned when operands use different propagation models.
	ErrModelMismatch = errors.New("measurement: propagation model mismatch")
)
