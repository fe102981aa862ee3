package quantity

import (
	"github.com/hupe1980/unitgo/ratio"
)

// Factor returns the multiplier that converts a value in scale from into a
// value in scale to, computed as (from.num*to.den) / (from.den*to.num).
//
// The product is formed exactly when it fits in int64. Otherwise each side is
// divided before multiplying so intermediate values stay small.
func Factor[T Number](from, to ratio.Ratio) T {
	if from.Equal(to) {
		return 1
	}
	if r, err := from.Div(to); err == nil {
		return T(r.Num()) / T(r.Den())
	}
	return (T(from.Num()) / T(from.Den())) * (T(to.Den()) / T(to.Num()))
}

// Cast expresses q in target. The dimensions must be equal. A cast between
// identical scales returns the value unchanged.
//
// Units with an affine offset are rejected unless q is already in target;
// use AffineCast for those.
func Cast[T Number](q Quantity[T], target Unit) (Quantity[T], error) {
	target.scale = normScale(target.scale)
	if q.unit.dim != target.dim {
		return q, mismatch("cast", q.unit.dim, target.dim)
	}
	if q.unit.Equal(target) {
		return Quantity[T]{value: q.value, unit: target}, nil
	}
	if q.unit.IsAffine() {
		return q, rejectAffine("cast", q.unit)
	}
	if target.IsAffine() {
		return q, rejectAffine("cast", target)
	}
	if q.unit.scale.Equal(target.scale) {
		return Quantity[T]{value: q.value, unit: target}, nil
	}
	return Quantity[T]{value: q.value * Factor[T](q.unit.scale, target.scale), unit: target}, nil
}

// AffineCast expresses q in target, honoring affine offsets on either side.
// The value passes through the canonical unit:
//
//	canonical = v*from.scale + from.offset
//	result    = (canonical - to.offset) / to.scale
//
// Arithmetic is carried out in float64.
func AffineCast[T Number](q Quantity[T], target Unit) (Quantity[T], error) {
	target.scale = normScale(target.scale)
	if q.unit.dim != target.dim {
		return q, mismatch("cast", q.unit.dim, target.dim)
	}
	if q.unit.Equal(target) {
		return Quantity[T]{value: q.value, unit: target}, nil
	}
	canonical := float64(q.value)*Factor[float64](q.unit.scale, ratio.One) + q.unit.offset
	v := (canonical - target.offset) * Factor[float64](ratio.One, target.scale)
	return Quantity[T]{value: T(v), unit: target}, nil
}

// In is shorthand for Cast(q, target).
func (q Quantity[T]) In(target Unit) (Quantity[T], error) {
	return Cast(q, target)
}
