package linalg

import (
	"github.com/hupe1980/unitgo/measurement"
	"github.com/hupe1980/unitgo/quantity"
	"github.com/hupe1980/unitgo/storage"
)

// Vec4 is a four-component vector of quantities, typically homogeneous
// coordinates transformed by a Matrix.
type Vec4[T quantity.Number] struct {
	X, Y, Z, W quantity.Quantity[T]
}

// NewVec4 returns (x, y, z, w) in unit.
func NewVec4[T quantity.Number](x, y, z, w T, unit quantity.Unit) Vec4[T] {
	return Vec4Of([storage.N]quantity.Quantity[T]{
		quantity.New(x, unit),
		quantity.New(y, unit),
		quantity.New(z, unit),
		quantity.New(w, unit),
	})
}

// Vec4Of builds a vector from its elements in x, y, z, w order.
func Vec4Of[T quantity.Number](e [storage.N]quantity.Quantity[T]) Vec4[T] {
	return Vec4[T]{X: e[0], Y: e[1], Z: e[2], W: e[3]}
}

// Elements returns the components in x, y, z, w order.
func (v Vec4[T]) Elements() [storage.N]quantity.Quantity[T] {
	return [storage.N]quantity.Quantity[T]{v.X, v.Y, v.Z, v.W}
}

// XYZ drops the w component.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// Add returns v+o componentwise.
func (v Vec4[T]) Add(o Vec4[T]) (Vec4[T], error) {
	e, err := zip4(v.Elements(), o.Elements(), quantity.Quantity[T].Add)
	return Vec4Of(e), err
}

// Sub returns v-o componentwise.
func (v Vec4[T]) Sub(o Vec4[T]) (Vec4[T], error) {
	e, err := zip4(v.Elements(), o.Elements(), quantity.Quantity[T].Sub)
	return Vec4Of(e), err
}

// Scale multiplies every component by k.
func (v Vec4[T]) Scale(k T) Vec4[T] {
	return Vec4[T]{X: v.X.MulScalar(k), Y: v.Y.MulScalar(k), Z: v.Z.MulScalar(k), W: v.W.MulScalar(k)}
}

// Dot returns the scalar product over all four components.
func (v Vec4[T]) Dot(o Vec4[T]) (quantity.Quantity[T], error) {
	return rowDot(v.Elements(), o.Elements())
}

// Transform returns m·v.
func Transform[T quantity.Number](m *Matrix[quantity.Quantity[T]], v Vec4[T]) (Vec4[T], error) {
	e, err := m.MulVec(v.Elements())
	if err != nil {
		return v, err
	}
	return Vec4Of(e), nil
}

// MeasuredVec4 is a four-component vector of measurements.
type MeasuredVec4[T quantity.Number] struct {
	X, Y, Z, W measurement.Measurement[T]
}

// MeasuredVec4Of builds a vector from its elements in x, y, z, w order.
func MeasuredVec4Of[T quantity.Number](e [storage.N]measurement.Measurement[T]) MeasuredVec4[T] {
	return MeasuredVec4[T]{X: e[0], Y: e[1], Z: e[2], W: e[3]}
}

// Elements returns the components in x, y, z, w order.
func (v MeasuredVec4[T]) Elements() [storage.N]measurement.Measurement[T] {
	return [storage.N]measurement.Measurement[T]{v.X, v.Y, v.Z, v.W}
}

// Add returns v+o componentwise.
func (v MeasuredVec4[T]) Add(o MeasuredVec4[T]) (MeasuredVec4[T], error) {
	e, err := zip4(v.Elements(), o.Elements(), measurement.Measurement[T].Add)
	return MeasuredVec4Of(e), err
}

// Sub returns v-o componentwise.
func (v MeasuredVec4[T]) Sub(o MeasuredVec4[T]) (MeasuredVec4[T], error) {
	e, err := zip4(v.Elements(), o.Elements(), measurement.Measurement[T].Sub)
	return MeasuredVec4Of(e), err
}

// Scale multiplies every component by k.
func (v MeasuredVec4[T]) Scale(k T) MeasuredVec4[T] {
	return MeasuredVec4[T]{X: v.X.MulScalar(k), Y: v.Y.MulScalar(k), Z: v.Z.MulScalar(k), W: v.W.MulScalar(k)}
}

// Dot returns the scalar product over all four components.
func (v MeasuredVec4[T]) Dot(o MeasuredVec4[T]) (measurement.Measurement[T], error) {
	return rowDot(v.Elements(), o.Elements())
}

// Values returns the central values as a Vec4.
func (v MeasuredVec4[T]) Values() Vec4[T] {
	return Vec4[T]{X: v.X.Value(), Y: v.Y.Value(), Z: v.Z.Value(), W: v.W.Value()}
}

// Magnitude returns the Euclidean norm of the x, y, z components with
// gradient-weighted uncertainty. W is ignored.
func (v MeasuredVec4[T]) Magnitude() (measurement.Measurement[T], error) {
	return measurement.Magnitude(v.X, v.Y, v.Z)
}

// TransformMeasured returns m·v.
func TransformMeasured[T quantity.Number](m *Matrix[measurement.Measurement[T]], v MeasuredVec4[T]) (MeasuredVec4[T], error) {
	e, err := m.MulVec(v.Elements())
	if err != nil {
		return v, err
	}
	return MeasuredVec4Of(e), nil
}

func zip4[E any](a, b [storage.N]E, f func(x, y E) (E, error)) ([storage.N]E, error) {
	var r [storage.N]E
	for i := range r {
		var err error
		if r[i], err = f(a[i], b[i]); err != nil {
			return a, err
		}
	}
	return r, nil
}
