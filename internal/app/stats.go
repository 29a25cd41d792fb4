// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	"viewbadge/internal/app/ports"
)

// Stats is an aggregated view over the counter.
type Stats struct {
	Keys           int       `json:"keys"`
	TotalViews     uint64    `json:"total_views"`
	TotalViewsText string    `json:"total_views_text"`
	StartedAt      time.Time `json:"started_at"`
	Uptime         string    `json:"uptime"`
}

// StatsService handles read-only statistics over the view counter.
// This is a read-only service (CQRS-lite pattern); it never increments.
type StatsService struct {
	reader  ports.CounterReader
	started time.Time
}

// NewStatsService creates a new StatsService anchored at the current time.
func NewStatsService(reader ports.CounterReader) *StatsService {
	return &StatsService{reader: reader, started: time.Now()}
}

// GetStats returns totals across all keys plus process uptime.
func (s *StatsService) GetStats(ctx context.Context) Stats {
	keys, views := s.reader.Totals()

	return Stats{
		Keys:           keys,
		TotalViews:     views,
		TotalViewsText: humanize.Comma(int64(views)),
		StartedAt:      s.started,
		Uptime:         humanize.Time(s.started),
	}
}
