// Package dimension provides the exponent vector that identifies a physical dimension.
//
// A Dimension holds one signed exponent per base dimension: the seven SI base
// dimensions extended with plane angle as an eighth slot so that rotational
// quantities stay distinguishable from plain ratios.
//
//	velocity := dimension.Of(dimension.Length).Div(dimension.Of(dimension.Time))
//	fmt.Println(velocity) // m/s
//
// Dimensions are comparable values. Every combining operation returns a new
// vector and never mutates its receiver; the zero value is the dimensionless
// (scalar) dimension.
package dimension
