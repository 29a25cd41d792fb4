// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ports defines the interfaces the application layer depends on.
package ports

// ViewCounter is the write port to the view-count store. Implementations
// must serialize increments per key.
type ViewCounter interface {
	IncrementAndGet(key string) (uint64, error)
}

// CounterReader is the read-only port used for statistics.
type CounterReader interface {
	Snapshot() map[string]uint64
	Totals() (keys int, views uint64)
}
