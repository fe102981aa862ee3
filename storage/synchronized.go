package storage

import "sync"

// Synchronized serializes Create and Destroy on a backend so it can be
// shared between goroutines. Element access through distinct handles needs
// no lock; a single handle must not be used from two goroutines at once.
type Synchronized[E any] struct {
	mu      sync.Mutex
	backend Backend[E]
}

// NewSynchronized wraps b.
func NewSynchronized[E any](b Backend[E]) *Synchronized[E] {
	return &Synchronized[E]{backend: b}
}

// Create calls the wrapped backend's Create under the lock.
func (s *Synchronized[E]) Create(g Grid[E]) (*Handle[E], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Create(g)
}

// Destroy calls the wrapped backend's Destroy under the lock.
func (s *Synchronized[E]) Destroy(h *Handle[E]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Destroy(h)
}

// Stats returns the wrapped pool's statistics, or false when the backend is
// not a pool.
func (s *Synchronized[E]) Stats() (Stats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.backend.(*Pool[E]); ok {
		return p.Stats(), true
	}
	return Stats{}, false
}
