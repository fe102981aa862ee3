package storage

import "github.com/cockroachdb/errors"

var (
	// ErrReleased is returned when a handle is used after Destroy.
	ErrReleased = errors.New("storage: handle released")

	// ErrForeignHandle is returned when a handle is destroyed by a backend
	// that did not create it.
	ErrForeignHandle = errors.New("storage: handle belongs to another backend")

	// ErrOutOfRange is returned for a row or column outside the grid.
	ErrOutOfRange = errors.New("storage: index out of range")

	// ErrInvalidCapacity is returned for a pool capacity below 1.
	ErrInvalidCapacity = errors.New("storage: invalid pool capacity")

	// ErrBudgetExceeded is returned when the memory budget cannot cover a pool.
	ErrBudgetExceeded = errors.New("storage: memory budget exceeded")

	// ErrActiveHandles is returned when closing a pool with outstanding handles.
	ErrActiveHandles = errors.New("storage: pool has active handles")

	// ErrExhausted is returned by StrictPolicy when no slot is free.
	ErrExhausted = errors.New("storage: pool exhausted")

	// ErrClosed is returned when creating from a closed pool.
	ErrClosed = errors.New("storage: pool closed")
)
