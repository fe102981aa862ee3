// Package quantity provides dimension-checked physical quantities.
//
// A Quantity pairs a numeric value with a Unit, which is an exact rational scale
// relative to the canonical SI unit plus a dimension vector. Go has no value
// generics, so the dimension travels with the value and is checked before any
// arithmetic is performed:
//
//	km := quantity.NewUnit(ratio.MustNew(1000, 1), dimension.Of(dimension.Length))
//	m := quantity.NewUnit(ratio.One, dimension.Of(dimension.Length))
//
//	d, _ := quantity.New(1.0, km).Add(quantity.New(500.0, m)) // 1.5 km
//	v, _ := quantity.Cast(d, m)                               // 1500 m
//
// # Arithmetic
//
//   - Add/Sub require equal dimensions; the right operand is rescaled to the
//     left operand's scale and the result keeps the left scale.
//   - Mul/Div always combine dimensions and scales; Div fails with
//     ErrDivisionByZero when the divisor value is zero.
//   - MulScalar/DivScalar touch the value only.
//
// # Conversion
//
// Cast converts between scales of the same dimension. Identical scales take
// an exact fast path. Affine units (Celsius, Fahrenheit) carry an offset and are
// rejected by Cast with ErrAffineConversionRejected; AffineCast converts them
// through the canonical unit.
package quantity
