// Package testutil provides testing utilities for unitgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG that generates random scales,
// dimensions, units, quantities, measurements and grids for property tests.
//
//	rng := testutil.NewRNG(seed)
//	u := rng.Unit(rng.Dimension())
//	q := rng.Quantity(u)
//	m := rng.Measurement(u)
package testutil
