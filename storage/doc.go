// Package storage holds fixed-size grids of quantities or measurements
// behind interchangeable backends.
//
// Embedded copies the grid into each Handle. Pool claims a slot from a
// fixed-capacity arena and falls back to a private allocation when every
// slot is taken, so Create does not fail on exhaustion under the default
// policy. Callers cannot tell the backends apart through a Handle except via
// Handle.Pooled and the pool's statistics.
//
// Every Create must be paired with exactly one Destroy on all paths:
//
//	h, err := pool.Create(grid)
//	if err != nil {
//		return err
//	}
//	defer pool.Destroy(h)
//
// Backends are not safe for concurrent use; wrap one with NewSynchronized
// to share it between goroutines.
package storage
