// Package inmemory provides the process-local CartStore implementation.
package inmemory

import (
	"sync"
	"time"

	"dinebot/internal/core/domain/model/cart"
	"dinebot/internal/core/domain/model/kernel"
)

// entry pairs a cart with the last time any operation touched it.
type entry struct {
	cart      *cart.Cart
	touchedAt time.Time
}

// CartStore keeps in-progress carts keyed by session. Map access is guarded
// by an internal mutex; on top of that, Lock hands out a per-session mutex so
// each order operation can run its whole read-modify-write sequence without
// racing a concurrent request for the same session.
type CartStore struct {
	mu      sync.Mutex
	entries map[kernel.SessionKey]*entry
	locks   map[kernel.SessionKey]*sync.Mutex

	// now is swappable for tests
	now func() time.Time
}

// NewCartStore creates an empty cart store.
func NewCartStore() *CartStore {
	return &CartStore{
		entries: make(map[kernel.SessionKey]*entry),
		locks:   make(map[kernel.SessionKey]*sync.Mutex),
		now:     time.Now,
	}
}

// Lock acquires the session's operation lock and returns its release
// function.
func (s *CartStore) Lock(key kernel.SessionKey) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Get returns the session's cart and whether one exists. A hit refreshes the
// last-touched time.
func (s *CartStore) Get(key kernel.SessionKey) (*cart.Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}

	e.touchedAt = s.now()
	return e.cart, true
}

// Put stores or replaces the session's cart.
func (s *CartStore) Put(key kernel.SessionKey, c *cart.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &entry{cart: c, touchedAt: s.now()}
}

// Delete removes the session's cart. No-op when absent.
func (s *CartStore) Delete(key kernel.SessionKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

// Len returns the number of sessions with an in-progress cart.
func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// EvictIdle removes every cart untouched for at least idleFor and returns
// the eviction count. Session mutexes are never removed: an operation that
// acquired its lock just before the sweep must still exclude the next one,
// and a mutex per seen session costs next to nothing.
func (s *CartStore) EvictIdle(idleFor time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idleFor)
	evicted := 0
	for key, e := range s.entries {
		if e.touchedAt.After(cutoff) {
			continue
		}
		delete(s.entries, key)
		evicted++
	}

	return evicted
}
