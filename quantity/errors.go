package quantity

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/unitgo/dimension"
)

var (
	// ErrDimensionMismatch is returned when operands have incompatible dimensions.
	ErrDimensionMismatch = errors.New("quantity: dimension mismatch")

	// ErrDivisionByZero is returned when a divisor value is exactly zero.
	ErrDivisionByZero = errors.New("quantity: division by zero")

	// ErrAffineConversionRejected is returned when an offset-based unit reaches
	// an operation that only handles linear scales.
	ErrAffineConversionRejected = errors.New("quantity: affine conversion rejected")

	// ErrScaleMismatch is returned when comparing quantities of the same
	// dimension but different scales without an explicit cast.
	ErrScaleMismatch = errors.New("quantity: scale mismatch")

	// ErrDomain is returned when a value lies outside a function's domain.
	ErrDomain = errors.New("quantity: value outside domain")
)

// DimensionMismatchError records the operation and the two dimensions that
// failed to match.
//
// It unwraps to ErrDimensionMismatch.
type DimensionMismatchError struct {
	Op    string
	Left  dimension.Dimension
	Right dimension.Dimension
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: dimension mismatch: %s vs %s", e.Op, e.Left, e.Right)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

func mismatch(op string, left, right dimension.Dimension) error {
	return &DimensionMismatchError{Op: op, Left: left, Right: right}
}

func rejectAffine(op string, u Unit) error {
	return errors.WithHint(
		errors.Wrapf(ErrAffineConversionRejected, "%s on affine unit %s", op, u),
		"convert offset scales with AffineCast",
	)
}
