package quantity

import (
	"strconv"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/ratio"
)

// Unit is the static part of a quantity: an exact scale relative to the
// canonical unit of a dimension, plus an optional affine offset.
//
// A value v in unit u corresponds to v*scale + offset in the canonical unit.
// The zero value is the dimensionless unit with scale 1; compare units with
// Equal.
type Unit struct {
	scale  ratio.Ratio
	dim    dimension.Dimension
	offset float64
}

// Dimensionless is the unit of plain numbers.
var Dimensionless = Unit{scale: ratio.One}

// NewUnit returns a linear unit.
func NewUnit(scale ratio.Ratio, dim dimension.Dimension) Unit {
	return Unit{scale: normScale(scale), dim: dim}
}

// NewAffineUnit returns a unit whose canonical value is value*scale + offset,
// such as degree Celsius (scale 1, offset 273.15 K).
func NewAffineUnit(scale ratio.Ratio, dim dimension.Dimension, offset float64) Unit {
	return Unit{scale: normScale(scale), dim: dim, offset: offset}
}

// Canonical returns the canonical (SI) unit of dim.
func Canonical(dim dimension.Dimension) Unit {
	return Unit{scale: ratio.One, dim: dim}
}

// normScale maps the zero ratio onto One.
func normScale(r ratio.Ratio) ratio.Ratio {
	if r.IsOne() {
		return ratio.One
	}
	return r
}

// Scale returns the ratio of u to the canonical unit.
func (u Unit) Scale() ratio.Ratio { return u.scale }

// Dimension returns the dimension vector of u.
func (u Unit) Dimension() dimension.Dimension { return u.dim }

// Offset returns the affine offset in canonical units.
func (u Unit) Offset() float64 { return u.offset }

// IsAffine reports whether u carries an offset.
func (u Unit) IsAffine() bool { return u.offset != 0 }

// IsScalar reports whether u is dimensionless.
func (u Unit) IsScalar() bool { return u.dim.IsScalar() }

// Convertible reports whether u and o share a dimension.
func (u Unit) Convertible(o Unit) bool { return u.dim == o.dim }

// Equal reports whether u and o are the same unit.
func (u Unit) Equal(o Unit) bool {
	return u.dim == o.dim && u.scale.Equal(o.scale) && u.offset == o.offset
}

// Mul returns the unit of a product.
func (u Unit) Mul(o Unit) (Unit, error) {
	if u.IsAffine() {
		return Dimensionless, rejectAffine("multiply", u)
	}
	if o.IsAffine() {
		return Dimensionless, rejectAffine("multiply", o)
	}
	s, err := u.scale.Mul(o.scale)
	if err != nil {
		return Dimensionless, err
	}
	return Unit{scale: s, dim: u.dim.Mul(o.dim)}, nil
}

// Div returns the unit of a quotient.
func (u Unit) Div(o Unit) (Unit, error) {
	if u.IsAffine() {
		return Dimensionless, rejectAffine("divide", u)
	}
	if o.IsAffine() {
		return Dimensionless, rejectAffine("divide", o)
	}
	s, err := u.scale.Div(o.scale)
	if err != nil {
		return Dimensionless, err
	}
	return Unit{scale: s, dim: u.dim.Div(o.dim)}, nil
}

// Pow returns u raised to the integer power n: exponents are multiplied by
// n and the scale is raised to n.
func (u Unit) Pow(n int) (Unit, error) {
	if u.IsAffine() {
		return Dimensionless, rejectAffine("pow", u)
	}
	d, err := u.dim.Pow(n)
	if err != nil {
		return Dimensionless, err
	}
	s, err := u.scale.Pow(n)
	if err != nil {
		return Dimensionless, err
	}
	return Unit{scale: s, dim: d}, nil
}

// Inverse returns 1/u.
func (u Unit) Inverse() (Unit, error) {
	return u.Pow(-1)
}

// String renders u as "[scale] dimension", omitting a scale of 1.
func (u Unit) String() string {
	s := u.dim.String()
	if !u.scale.IsOne() {
		s = "[" + u.scale.String() + "] " + s
	}
	if u.IsAffine() {
		s += " +" + strconv.FormatFloat(u.offset, 'g', -1, 64)
	}
	return s
}
