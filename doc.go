// Package unitgo provides dimension-checked physical quantities with exact
// rational scales and uncertainty propagation.
//
// The work is split across packages:
//
//   - dimension: base-dimension exponent vectors
//   - ratio: exact int64 scales
//   - quantity: Quantity[T], Unit, Cast and AffineCast
//   - measurement: values with RSS or linear uncertainty propagation
//   - storage: embedded and pooled 4x4 grids
//   - linalg: vectors and matrices over quantities and measurements
//   - catalog: named units, unit files and formatting
//
// This package ties them together behind an Engine that resolves unit names
// through a catalog, logs operations and records metrics:
//
//	eng := unitgo.New(unitgo.WithLogger(unitgo.NewTextLogger(slog.LevelDebug)))
//	q, err := eng.Convert(ctx, 36, "km/h", "m/s")
//	if err != nil {
//	    switch unitgo.KindOf(err) {
//	    case unitgo.KindDimensionMismatch:
//	        // ...
//	    }
//	}
//	fmt.Println(eng.Format(q)) // 10 m/s
//
// Arithmetic never panics on bad input; every failure is an error that
// KindOf classifies.
package unitgo
