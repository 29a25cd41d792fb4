// SPDX-License-Identifier: AGPL-3.0-or-later

// Package counter provides the in-memory view-count store shared by all
// concurrent requests.
package counter

import (
	"sync"

	"viewbadge/internal/domain"
)

// Counter maps resource keys to monotonically increasing view counts.
// A key's first access yields 1. The map grows with distinct keys and is
// never evicted; it lives for the process lifetime.
type Counter struct {
	mu     sync.Mutex
	views  map[string]uint64
	closed bool
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{views: make(map[string]uint64)}
}

// IncrementAndGet atomically increments the count for key and returns
// the new value. The critical section covers only the read-modify-write.
// Returns domain.ErrCounterUnavailable once the counter has been closed;
// callers surface that as a transient server error.
func (c *Counter) IncrementAndGet(key string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, domain.ErrCounterUnavailable
	}

	c.views[key]++
	return c.views[key], nil
}

// Snapshot returns a copy of the current counts.
func (c *Counter) Snapshot() map[string]uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make(map[string]uint64, len(c.views))
	for key, views := range c.views {
		snapshot[key] = views
	}
	return snapshot
}

// Totals returns the number of distinct keys and the sum of all counts.
func (c *Counter) Totals() (keys int, views uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range c.views {
		views += v
	}
	return len(c.views), views
}

// Close marks the counter unavailable. Subsequent increments fail with
// domain.ErrCounterUnavailable; snapshots remain readable. Used during
// shutdown so in-flight requests fail cleanly instead of racing teardown.
func (c *Counter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
