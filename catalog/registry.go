package catalog

import (
	"maps"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/quantity"
)

// Entry is a named unit.
type Entry struct {
	Name          string
	Symbol        string
	UnicodeSymbol string
	Unit          quantity.Unit
}

// Display returns the unicode symbol when requested and present, otherwise
// the ASCII symbol.
func (e Entry) Display(unicode bool) string {
	if unicode && e.UnicodeSymbol != "" {
		return e.UnicodeSymbol
	}
	return e.Symbol
}

// unitKey identifies a unit by value. Unit itself is not comparable by ==
// because its zero scale equals One.
type unitKey struct {
	num, den int64
	dim      dimension.Dimension
	offset   float64
}

func keyOf(u quantity.Unit) unitKey {
	s := u.Scale()
	return unitKey{num: s.Num(), den: s.Den(), dim: u.Dimension(), offset: u.Offset()}
}

// Registry maps names and symbols to units. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	names   map[string]int // lower-cased name
	symbols map[string]int // ASCII and unicode symbols, case-sensitive
	units   map[unitKey]int
	frozen  bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names:   make(map[string]int),
		symbols: make(map[string]int),
		units:   make(map[unitKey]int),
	}
}

// Register adds e. Names are matched case-insensitively and symbols exactly;
// both must be unique. When several entries share a unit, Resolve returns the
// first one registered.
func (r *Registry) Register(e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(e)
}

func (r *Registry) register(e Entry) error {
	if r.frozen {
		return errors.Wrapf(ErrFrozen, "register %q", e.Name)
	}
	if e.Name == "" || e.Symbol == "" {
		return errors.Wrapf(ErrFormat, "entry needs name and symbol: %+v", e)
	}

	name := strings.ToLower(e.Name)
	if _, ok := r.names[name]; ok {
		return errors.Wrapf(ErrDuplicate, "name %q", e.Name)
	}
	for _, s := range []string{e.Symbol, e.UnicodeSymbol} {
		if s == "" {
			continue
		}
		if _, ok := r.symbols[s]; ok {
			return errors.Wrapf(ErrDuplicate, "symbol %q", s)
		}
	}

	i := len(r.entries)
	r.entries = append(r.entries, e)
	r.names[name] = i
	r.symbols[e.Symbol] = i
	if e.UnicodeSymbol != "" {
		r.symbols[e.UnicodeSymbol] = i
	}
	if _, ok := r.units[keyOf(e.Unit)]; !ok {
		r.units[keyOf(e.Unit)] = i
	}
	return nil
}

// Lookup finds an entry by symbol, unicode symbol or name.
func (r *Registry) Lookup(s string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, ok := r.symbols[s]; ok {
		return r.entries[i], nil
	}
	if i, ok := r.names[strings.ToLower(s)]; ok {
		return r.entries[i], nil
	}
	return Entry{}, errors.WithHint(
		errors.Wrapf(ErrUnknownUnit, "%q", s),
		"list known units with `unitconv units`",
	)
}

// Resolve returns the entry registered for u, if any.
func (r *Registry) Resolve(u quantity.Unit) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.units[keyOf(u)]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Entry(nil), r.entries...)
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Freeze makes r read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether r is read-only.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Clone returns a modifiable copy of r.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cloneLocked()
}

func (r *Registry) cloneLocked() *Registry {
	c := NewRegistry()
	c.entries = append(c.entries, r.entries...)
	maps.Copy(c.names, r.names)
	maps.Copy(c.symbols, r.symbols)
	maps.Copy(c.units, r.units)
	return c
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the frozen built-in registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		for _, e := range builtin() {
			if err := r.register(e); err != nil {
				panic(err)
			}
		}
		r.frozen = true
		defaultRegistry = r
	})
	return defaultRegistry
}
