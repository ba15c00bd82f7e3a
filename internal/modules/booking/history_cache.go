package booking

import (
	"sync"

	"pawspace/internal/repository"
)

// historyCache memoizes the booking-history listing per user. A
// successful commit invalidates the submitting user's entry so the
// next read is fresh.
type historyCache struct {
	mu      sync.RWMutex
	entries map[int64][]repository.OwnerBookingRow
}

func newHistoryCache() *historyCache {
	return &historyCache{entries: make(map[int64][]repository.OwnerBookingRow)}
}

func (c *historyCache) get(userID int64) ([]repository.OwnerBookingRow, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rows, ok := c.entries[userID]
	return rows, ok
}

func (c *historyCache) set(userID int64, rows []repository.OwnerBookingRow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = rows
}

func (c *historyCache) invalidate(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
}
