package cache

import "sync"

// StatusOverlayCache holds optimistic isActive values for users whose status
// toggle has been dispatched but not yet reflected by a refetch. Entries are
// dropped once the server copy agrees; there is no rollback path when the
// server rejects a toggle.
type StatusOverlayCache struct {
	mu       sync.RWMutex
	statuses map[string]bool
}

func NewStatusOverlayCache() *StatusOverlayCache {
	return &StatusOverlayCache{statuses: make(map[string]bool)}
}

func (c *StatusOverlayCache) Set(userID string, isActive bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[userID] = isActive
}

func (c *StatusOverlayCache) Get(userID string) (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.statuses[userID]
	return v, ok
}

// Reconcile drops the overlay entry when the fetched server state matches
// the optimistic one. A disagreeing server state keeps the overlay in place,
// so the flipped value stays visible.
func (c *StatusOverlayCache) Reconcile(userID string, serverActive bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.statuses[userID]; ok && v == serverActive {
		delete(c.statuses, userID)
	}
}
