package storage

import (
	"unsafe"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

// Pool is a fixed-capacity arena of grid slots.
//
// A Pool is not safe for concurrent use.
type Pool[E any] struct {
	slots  []Grid[E]
	owners []*Handle[E]
	inUse  *bitset.BitSet

	active    int
	peak      int
	fallbacks int
	reserved  int64
	closed    bool

	opts options
}

// NewPool returns a pool of capacity slots.
func NewPool[E any](capacity int, opts ...Option) (*Pool[E], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var g Grid[E]
	bytes := int64(capacity) * int64(unsafe.Sizeof(g))
	if o.budget != nil && !o.budget.TryAcquireMemory(bytes) {
		return nil, errors.Wrapf(ErrBudgetExceeded, "%d slots need %d bytes", capacity, bytes)
	}

	p := &Pool[E]{
		slots:    make([]Grid[E], capacity),
		owners:   make([]*Handle[E], capacity),
		inUse:    bitset.New(uint(capacity)),
		reserved: bytes,
		opts:     o,
	}
	if o.budget == nil {
		p.reserved = 0
	}
	return p, nil
}

// Create claims a free slot and copies g into it. When no slot is free the
// exhaustion policy runs; under the default policy Create falls back to a
// private allocation and counts it.
func (p *Pool[E]) Create(g Grid[E]) (*Handle[E], error) {
	if p.closed {
		return nil, ErrClosed
	}

	slot, ok := p.inUse.NextClear(0)
	if !ok || slot >= uint(len(p.slots)) {
		if err := p.opts.policy.OnExhausted(p.Stats()); err != nil {
			return nil, err
		}
		p.fallbacks++
		p.opts.logger.Warn("storage pool exhausted, falling back to heap",
			"capacity", len(p.slots),
			"fallbacks", p.fallbacks,
		)
		return newInline(p, g), nil
	}

	p.inUse.Set(slot)
	p.slots[slot] = g
	p.active++
	p.peak = max(p.peak, p.active)
	p.opts.logger.Debug("storage slot claimed", "slot", slot, "active", p.active)

	h := &Handle[E]{grid: &p.slots[slot], owner: p, slot: int(slot)}
	p.owners[slot] = h
	return h, nil
}

// Destroy returns h's slot to the pool, or drops a fallback allocation.
// Only the handle returned by Create is accepted; a copy of it fails with
// ErrReleased and leaves the slot untouched.
func (p *Pool[E]) Destroy(h *Handle[E]) error {
	if h == nil || h.grid == nil {
		return ErrReleased
	}
	if h.owner != p {
		return ErrForeignHandle
	}

	if h.slot < 0 {
		if h.grid != &h.inline {
			return errors.Wrap(ErrReleased, "copied fallback handle")
		}
		h.release()
		return nil
	}

	slot := uint(h.slot)
	if slot >= uint(len(p.slots)) || !p.inUse.Test(slot) || p.owners[slot] != h {
		return errors.Wrapf(ErrReleased, "slot %d is not held by this handle", slot)
	}
	p.slots[slot] = Grid[E]{}
	p.owners[slot] = nil
	p.inUse.Clear(slot)
	p.active--
	h.release()
	return nil
}

// ActiveSlotCount returns the number of claimed slots. Fallback
// allocations are not counted.
func (p *Pool[E]) ActiveSlotCount() int { return p.active }

// FallbackCount returns the number of Creates served outside the pool.
func (p *Pool[E]) FallbackCount() int { return p.fallbacks }

// PeakUsage returns the highest ActiveSlotCount observed.
func (p *Pool[E]) PeakUsage() int { return p.peak }

// Capacity returns the number of slots.
func (p *Pool[E]) Capacity() int { return len(p.slots) }

// Stats returns a snapshot of the pool counters.
func (p *Pool[E]) Stats() Stats {
	return Stats{
		Capacity:      len(p.slots),
		Active:        p.active,
		Peak:          p.peak,
		Fallbacks:     p.fallbacks,
		ReservedBytes: p.reserved,
	}
}

// ResetStatistics clears the fallback counter and resets the peak to the
// current usage.
func (p *Pool[E]) ResetStatistics() {
	p.fallbacks = 0
	p.peak = p.active
}

// Close returns the reserved memory to the budget. It fails with
// ErrActiveHandles while slots are claimed. Closing twice is a no-op.
func (p *Pool[E]) Close() error {
	if p.closed {
		return nil
	}
	if p.active > 0 {
		return errors.Wrapf(ErrActiveHandles, "%d active", p.active)
	}
	p.closed = true
	if p.opts.budget != nil {
		p.opts.budget.ReleaseMemory(p.reserved)
	}
	p.reserved = 0
	return nil
}
