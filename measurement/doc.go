// Package measurement pairs quantities with an absolute uncertainty and
// propagates it through arithmetic.
//
// Independent uncertainties combine in quadrature (root-sum-square) by
// default:
//
//	a := measurement.New(quantity.New(10.0, m), 0.5)
//	b := measurement.New(quantity.New(20.0, m), 1.0)
//	sum, _ := a.Add(b) // 30 ± 1.118 m
//
// The Linear model sums uncertainties instead, giving a worst-case bound.
// Single-operand operations (Square, Pow, Sqrt, Sin, Cos) use first-order
// propagation of the derivative.
package measurement
