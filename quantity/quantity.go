package quantity

import (
	"cmp"
	"fmt"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/ratio"
)

// Number is the set of numeric representations a Quantity can hold.
type Number interface {
	~float32 | ~float64
}

// Quantity is a value tagged with a Unit.
//
// Quantities are immutable values; every operation returns a new Quantity.
// The zero value is the dimensionless number 0.
type Quantity[T Number] struct {
	value T
	unit  Unit
}

// New returns value expressed in unit.
func New[T Number](value T, unit Unit) Quantity[T] {
	unit.scale = normScale(unit.scale)
	return Quantity[T]{value: value, unit: unit}
}

// Scalar returns a dimensionless quantity that behaves like its number.
func Scalar[T Number](value T) Quantity[T] {
	return Quantity[T]{value: value, unit: Dimensionless}
}

// Value returns the numeric value in the quantity's own unit.
func (q Quantity[T]) Value() T { return q.value }

// Unit returns the unit of q.
func (q Quantity[T]) Unit() Unit {
	q.unit.scale = normScale(q.unit.scale)
	return q.unit
}

// Dimension returns the dimension of q.
func (q Quantity[T]) Dimension() dimension.Dimension { return q.unit.dim }

// Scale returns the scale of q's unit.
func (q Quantity[T]) Scale() ratio.Ratio { return normScale(q.unit.scale) }

// AsScalar returns the plain number of a dimensionless quantity, rescaled to
// scale 1 (50 percent yields 0.5).
func (q Quantity[T]) AsScalar() (T, error) {
	if !q.unit.IsScalar() {
		return 0, mismatch("scalar", q.unit.dim, dimension.Scalar)
	}
	return q.value * Factor[T](q.unit.scale, ratio.One), nil
}

// Add returns q+o in q's unit. o is rescaled first when the scales differ.
func (q Quantity[T]) Add(o Quantity[T]) (Quantity[T], error) {
	v, err := q.align("add", o)
	if err != nil {
		return q, err
	}
	return Quantity[T]{value: q.value + v, unit: q.unit}, nil
}

// Sub returns q-o in q's unit. o is rescaled first when the scales differ.
func (q Quantity[T]) Sub(o Quantity[T]) (Quantity[T], error) {
	v, err := q.align("subtract", o)
	if err != nil {
		return q, err
	}
	return Quantity[T]{value: q.value - v, unit: q.unit}, nil
}

// align returns o's value expressed in q's unit.
func (q Quantity[T]) align(op string, o Quantity[T]) (T, error) {
	if q.unit.dim != o.unit.dim {
		return 0, mismatch(op, q.unit.dim, o.unit.dim)
	}
	if q.unit.Equal(o.unit) {
		return o.value, nil
	}
	if q.unit.IsAffine() {
		return 0, rejectAffine(op, q.unit)
	}
	if o.unit.IsAffine() {
		return 0, rejectAffine(op, o.unit)
	}
	return o.value * Factor[T](o.unit.scale, q.unit.scale), nil
}

// Mul returns q*o. Scales and dimensions combine.
func (q Quantity[T]) Mul(o Quantity[T]) (Quantity[T], error) {
	u, err := q.unit.Mul(o.unit)
	if err != nil {
		return q, err
	}
	return Quantity[T]{value: q.value * o.value, unit: u}, nil
}

// Product is Mul. It lets quantities and measurements share one product
// method in generic code.
func (q Quantity[T]) Product(o Quantity[T]) (Quantity[T], error) {
	return q.Mul(o)
}

// Div returns q/o. It fails with ErrDivisionByZero when o's value is zero.
func (q Quantity[T]) Div(o Quantity[T]) (Quantity[T], error) {
	if o.value == 0 {
		return q, errors.Wrapf(ErrDivisionByZero, "%v / %v", q, o)
	}
	u, err := q.unit.Div(o.unit)
	if err != nil {
		return q, err
	}
	return Quantity[T]{value: q.value / o.value, unit: u}, nil
}

// MulScalar multiplies the value by k.
func (q Quantity[T]) MulScalar(k T) Quantity[T] {
	return Quantity[T]{value: q.value * k, unit: q.unit}
}

// DivScalar divides the value by k. It fails with ErrDivisionByZero when k is zero.
func (q Quantity[T]) DivScalar(k T) (Quantity[T], error) {
	if k == 0 {
		return q, errors.Wrapf(ErrDivisionByZero, "%v / 0", q)
	}
	return Quantity[T]{value: q.value / k, unit: q.unit}, nil
}

// Neg returns -q.
func (q Quantity[T]) Neg() Quantity[T] {
	return Quantity[T]{value: -q.value, unit: q.unit}
}

// Abs returns |q|.
func (q Quantity[T]) Abs() Quantity[T] {
	if q.value < 0 {
		return q.Neg()
	}
	return q
}

// Pow returns q raised to the integer power n.
func (q Quantity[T]) Pow(n int) (Quantity[T], error) {
	if n < 0 && q.value == 0 {
		return q, errors.Wrapf(ErrDivisionByZero, "(%v)^%d", q, n)
	}
	u, err := q.unit.Pow(n)
	if err != nil {
		return q, err
	}
	return Quantity[T]{value: T(math.Pow(float64(q.value), float64(n))), unit: u}, nil
}

// Sqrt returns the square root of q. Every dimension exponent must be even.
// The scale is kept when it is a perfect square; otherwise the value is
// expressed in the canonical unit first.
func (q Quantity[T]) Sqrt() (Quantity[T], error) {
	if q.unit.IsAffine() {
		return q, rejectAffine("sqrt", q.unit)
	}
	if q.value < 0 {
		return q, errors.Wrapf(ErrDomain, "sqrt of %v", q)
	}
	dim, ok := q.unit.dim.Root(2)
	if !ok {
		return q, errors.Wrapf(ErrDimensionMismatch, "sqrt of %s", q.unit.dim)
	}
	if s, ok := q.unit.scale.Sqrt(); ok {
		return Quantity[T]{value: T(math.Sqrt(float64(q.value))), unit: Unit{scale: s, dim: dim}}, nil
	}
	v := q.value * Factor[T](q.unit.scale, ratio.One)
	return Quantity[T]{value: T(math.Sqrt(float64(v))), unit: Canonical(dim)}, nil
}

// Equal reports whether q and o have the same unit and the same value.
func (q Quantity[T]) Equal(o Quantity[T]) bool {
	return q.unit.Equal(o.unit) && q.value == o.value
}

// String renders q as "value unit".
func (q Quantity[T]) String() string {
	if q.unit.IsScalar() && normScale(q.unit.scale).IsOne() {
		return fmt.Sprintf("%g", q.value)
	}
	return fmt.Sprintf("%g %s", q.value, q.Unit())
}

// Compare orders two quantities of the same unit. Quantities of the same
// dimension but different scales return ErrScaleMismatch and must be cast
// first.
func Compare[T Number](a, b Quantity[T]) (int, error) {
	if a.unit.dim != b.unit.dim {
		return 0, mismatch("compare", a.unit.dim, b.unit.dim)
	}
	if !a.unit.Equal(b.unit) {
		return 0, errors.Wrapf(ErrScaleMismatch, "compare %s with %s", a.Unit(), b.Unit())
	}
	return cmp.Compare(a.value, b.value), nil
}
