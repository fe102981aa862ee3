package linalg

import (
	"github.com/hupe1980/unitgo/measurement"
	"github.com/hupe1980/unitgo/quantity"
)

// Vec3 is a three-component vector of quantities.
type Vec3[T quantity.Number] struct {
	X, Y, Z quantity.Quantity[T]
}

// NewVec3 returns (x, y, z) in unit.
func NewVec3[T quantity.Number](x, y, z T, unit quantity.Unit) Vec3[T] {
	return Vec3[T]{
		X: quantity.New(x, unit),
		Y: quantity.New(y, unit),
		Z: quantity.New(z, unit),
	}
}

// Add returns v+o componentwise.
func (v Vec3[T]) Add(o Vec3[T]) (Vec3[T], error) {
	return v.zip(o, quantity.Quantity[T].Add)
}

// Sub returns v-o componentwise.
func (v Vec3[T]) Sub(o Vec3[T]) (Vec3[T], error) {
	return v.zip(o, quantity.Quantity[T].Sub)
}

// Scale multiplies every component by k.
func (v Vec3[T]) Scale(k T) Vec3[T] {
	return Vec3[T]{X: v.X.MulScalar(k), Y: v.Y.MulScalar(k), Z: v.Z.MulScalar(k)}
}

// Dot returns the scalar product.
func (v Vec3[T]) Dot(o Vec3[T]) (quantity.Quantity[T], error) {
	x, err := v.X.Mul(o.X)
	if err != nil {
		return x, err
	}
	y, err := v.Y.Mul(o.Y)
	if err != nil {
		return x, err
	}
	z, err := v.Z.Mul(o.Z)
	if err != nil {
		return x, err
	}
	return sum(x, y, z)
}

// Cross returns the vector product.
func (v Vec3[T]) Cross(o Vec3[T]) (Vec3[T], error) {
	var r Vec3[T]
	var err error
	if r.X, err = det(v.Y, o.Z, v.Z, o.Y); err != nil {
		return r, err
	}
	if r.Y, err = det(v.Z, o.X, v.X, o.Z); err != nil {
		return r, err
	}
	if r.Z, err = det(v.X, o.Y, v.Y, o.X); err != nil {
		return r, err
	}
	return r, nil
}

// Magnitude returns the Euclidean norm in the unit of X.
func (v Vec3[T]) Magnitude() (quantity.Quantity[T], error) {
	sq, err := v.Dot(v)
	if err != nil {
		return sq, err
	}
	n, err := sq.Sqrt()
	if err != nil {
		return n, err
	}
	return quantity.Cast(n, v.X.Unit())
}

func (v Vec3[T]) zip(o Vec3[T], f func(a, b quantity.Quantity[T]) (quantity.Quantity[T], error)) (Vec3[T], error) {
	var r Vec3[T]
	var err error
	if r.X, err = f(v.X, o.X); err != nil {
		return v, err
	}
	if r.Y, err = f(v.Y, o.Y); err != nil {
		return v, err
	}
	if r.Z, err = f(v.Z, o.Z); err != nil {
		return v, err
	}
	return r, nil
}

// det returns a*b - c*d.
func det[T quantity.Number](a, b, c, d quantity.Quantity[T]) (quantity.Quantity[T], error) {
	ab, err := a.Mul(b)
	if err != nil {
		return ab, err
	}
	cd, err := c.Mul(d)
	if err != nil {
		return ab, err
	}
	return ab.Sub(cd)
}

func sum[T quantity.Number](first quantity.Quantity[T], rest ...quantity.Quantity[T]) (quantity.Quantity[T], error) {
	acc := first
	for _, q := range rest {
		var err error
		if acc, err = acc.Add(q); err != nil {
			return first, err
		}
	}
	return acc, nil
}

// MeasuredVec3 is a three-component vector of measurements.
type MeasuredVec3[T quantity.Number] struct {
	X, Y, Z measurement.Measurement[T]
}

// Add returns v+o componentwise.
func (v MeasuredVec3[T]) Add(o MeasuredVec3[T]) (MeasuredVec3[T], error) {
	return v.zip(o, measurement.Measurement[T].Add)
}

// Sub returns v-o componentwise.
func (v MeasuredVec3[T]) Sub(o MeasuredVec3[T]) (MeasuredVec3[T], error) {
	return v.zip(o, measurement.Measurement[T].Sub)
}

// Scale multiplies every component by k.
func (v MeasuredVec3[T]) Scale(k T) MeasuredVec3[T] {
	return MeasuredVec3[T]{X: v.X.MulScalar(k), Y: v.Y.MulScalar(k), Z: v.Z.MulScalar(k)}
}

// Values returns the central values as a Vec3.
func (v MeasuredVec3[T]) Values() Vec3[T] {
	return Vec3[T]{X: v.X.Value(), Y: v.Y.Value(), Z: v.Z.Value()}
}

// Magnitude returns the Euclidean norm with gradient-weighted uncertainty.
func (v MeasuredVec3[T]) Magnitude() (measurement.Measurement[T], error) {
	return measurement.Magnitude(v.X, v.Y, v.Z)
}

func (v MeasuredVec3[T]) zip(o MeasuredVec3[T], f func(a, b measurement.Measurement[T]) (measurement.Measurement[T], error)) (MeasuredVec3[T], error) {
	var r MeasuredVec3[T]
	var err error
	if r.X, err = f(v.X, o.X); err != nil {
		return v, err
	}
	if r.Y, err = f(v.Y, o.Y); err != nil {
		return v, err
	}
	if r.Z, err = f(v.Z, o.Z); err != nil {
		return v, err
	}
	return r, nil
}
