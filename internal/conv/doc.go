// Package conv provides checked integer arithmetic and conversion utilities.
//
// Scale ratios are exact int64 rationals, so every product or power taken while
// combining units must detect overflow instead of wrapping silently. The
// conversion helpers bound-check values read from user supplied unit files
// before they are narrowed into dimension exponents.
//
// For operations that are provably safe by domain constraints (loop indices,
// fixed grid coordinates), use direct type casts instead.
package conv
