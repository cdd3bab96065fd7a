package ports

import (
	"time"

	"dinebot/internal/core/domain/model/cart"
	"dinebot/internal/core/domain/model/kernel"
)

// CartStore is the process-wide staging area mapping a session key to its
// in-progress cart. It is not a system of record: contents do not survive a
// restart, and an entry disappears when the order completes or the session
// goes idle long enough to be evicted.
type CartStore interface {
	// Lock acquires the mutual-exclusion lock for one session and returns
	// the release function. Operations must hold the lock for their entire
	// read-modify-write sequence so concurrent requests for the same
	// session serialize. Sessions never block each other.
	Lock(key kernel.SessionKey) (release func())

	// Get returns the session's cart and whether one exists.
	// An existing empty cart reports true.
	Get(key kernel.SessionKey) (*cart.Cart, bool)

	// Put stores or replaces the session's cart and refreshes its
	// last-touched time.
	Put(key kernel.SessionKey, c *cart.Cart)

	// Delete removes the session's cart. Deleting an absent session is a
	// no-op.
	Delete(key kernel.SessionKey)

	// EvictIdle removes every cart untouched for at least the given
	// duration and returns how many were evicted.
	EvictIdle(idleFor time.Duration) int
}
