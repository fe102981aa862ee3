// Package ratio provides the exact rational scale factor of a unit relative to
// the canonical SI unit of its dimension (kilometer = 1000/1, liter = 1/1000).
//
// Ratios are always reduced and strictly positive. Combining ratios is exact
// int64 arithmetic; any step that would overflow returns ErrOverflow rather than
// wrapping. The zero value behaves as 1/1.
package ratio
