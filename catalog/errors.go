package catalog

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownUnit is returned when a name or symbol is not registered.
	ErrUnknownUnit = errors.New("catalog: unknown unit")

	// ErrDuplicate is returned when a name or symbol is already registered.
	ErrDuplicate = errors.New("catalog: duplicate unit")

	// ErrFrozen is returned when modifying a frozen registry.
	ErrFrozen = errors.New("catalog: registry is frozen")

	// ErrFormat is returned for malformed entries or unit files.
	ErrFormat = errors.New("catalog: malformed unit definition")
)
