package storage

import "github.com/cockroachdb/errors"

// N is the rank of every grid.
const N = 4

// Grid is an N×N block of elements. A vector of length N occupies row 0.
type Grid[E any] [N][N]E

// Backend creates and destroys handles to grids.
type Backend[E any] interface {
	// Create copies g into new storage and returns its handle.
	Create(g Grid[E]) (*Handle[E], error)
	// Destroy releases the storage behind h. h must not be used afterwards.
	Destroy(h *Handle[E]) error
}

// Handle gives element access to a grid owned by a Backend.
type Handle[E any] struct {
	grid   *Grid[E]
	inline Grid[E]
	owner  any
	slot   int
}

func newInline[E any](owner any, g Grid[E]) *Handle[E] {
	h := &Handle[E]{inline: g, owner: owner, slot: -1}
	h.grid = &h.inline
	return h
}

// At returns a pointer to the element at (row, col), or nil when h has been
// released or the index is out of range.
func (h *Handle[E]) At(row, col int) *E {
	if h == nil || h.grid == nil || !inRange(row, col) {
		return nil
	}
	return &h.grid[row][col]
}

// Get returns the element at (row, col).
func (h *Handle[E]) Get(row, col int) (E, error) {
	var zero E
	if err := h.check(row, col); err != nil {
		return zero, err
	}
	return h.grid[row][col], nil
}

// Set stores v at (row, col).
func (h *Handle[E]) Set(row, col int, v E) error {
	if err := h.check(row, col); err != nil {
		return err
	}
	h.grid[row][col] = v
	return nil
}

// Grid returns a copy of the whole grid.
func (h *Handle[E]) Grid() (Grid[E], error) {
	if h == nil || h.grid == nil {
		return Grid[E]{}, ErrReleased
	}
	return *h.grid, nil
}

// Released reports whether h has been destroyed.
func (h *Handle[E]) Released() bool { return h == nil || h.grid == nil }

// Pooled reports whether h occupies a pool slot rather than its own storage.
func (h *Handle[E]) Pooled() bool { return h != nil && h.slot >= 0 }

func (h *Handle[E]) check(row, col int) error {
	if h == nil || h.grid == nil {
		return ErrReleased
	}
	if !inRange(row, col) {
		return errors.Wrapf(ErrOutOfRange, "(%d, %d) in %dx%d grid", row, col, N, N)
	}
	return nil
}

func (h *Handle[E]) release() {
	h.grid = nil
	h.inline = Grid[E]{}
}

func inRange(row, col int) bool {
	return row >= 0 && row < N && col >= 0 && col < N
}

// Embedded stores each grid inside its handle. It keeps no shared state.
type Embedded[E any] struct{}

// Create copies g into a new handle. It never fails.
func (Embedded[E]) Create(g Grid[E]) (*Handle[E], error) {
	return newInline[E](nil, g), nil
}

// Destroy releases h.
func (Embedded[E]) Destroy(h *Handle[E]) error {
	if h == nil || h.grid == nil {
		return ErrReleased
	}
	if h.owner != nil {
		return ErrForeignHandle
	}
	h.release()
	return nil
}
