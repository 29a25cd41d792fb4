// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app contains the application services composing the counter,
// color scale and template into badge responses.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"viewbadge/internal/app/ports"
	"viewbadge/internal/domain"
	"viewbadge/internal/services/badge"
)

// BadgeService handles the view use case: count a view for a resource
// key and render the badge document for it.
type BadgeService struct {
	counter ports.ViewCounter
	scale   *badge.ColorScale
	tmpl    *badge.Template
	logger  *slog.Logger
}

// NewBadgeService creates a new BadgeService.
func NewBadgeService(counter ports.ViewCounter, scale *badge.ColorScale, tmpl *badge.Template, logger *slog.Logger) *BadgeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BadgeService{
		counter: counter,
		scale:   scale,
		tmpl:    tmpl,
		logger:  logger,
	}
}

// View increments the count for key, picks a color according to mode and
// renders the badge. A counter failure propagates unchanged; the count
// is never incremented twice for one request and there are no retries.
func (s *BadgeService) View(ctx context.Context, key string, mode domain.FillMode) (string, uint64, error) {
	count, err := s.counter.IncrementAndGet(key)
	if err != nil {
		return "", 0, fmt.Errorf("increment %q: %w", key, err)
	}

	var color string
	switch mode {
	case domain.FillModeRandom:
		color = s.scale.RandomColor()
	default:
		color = s.scale.ColorForCount(count)
	}

	s.logger.Debug("badge rendered", "key", key, "count", count, "fill_mode", mode, "color", color)

	doc := s.tmpl.Render("#"+color, strconv.FormatUint(count, 10))
	return doc, count, nil
}
