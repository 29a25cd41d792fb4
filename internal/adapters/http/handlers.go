// SPDX-License-Identifier: AGPL-3.0-or-later

// Package http provides HTTP handlers that delegate to application services.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"viewbadge/internal/app"
	"viewbadge/internal/domain"
)

// Handlers holds HTTP handlers and their dependencies.
type Handlers struct {
	badges *app.BadgeService
	stats  *app.StatsService
	logger *slog.Logger
}

// NewHandlers creates a new Handlers with the given services.
func NewHandlers(badges *app.BadgeService, stats *app.StatsService, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		badges: badges,
		stats:  stats,
		logger: logger,
	}
}

// Healthcheck returns a simple health status.
func (h *Handlers) Healthcheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Stats returns aggregated counter statistics as JSON. Reading stats
// never increments any count.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.stats.GetStats(r.Context()))
}

// Badge serves the root path: a bare "/" answers 200 as a liveness
// probe, a single path segment is treated as the resource key and gets a
// view-count badge. Deeper paths do not exist.
// GET /{key}?fill_mode={milestone|random}
func (h *Handlers) Badge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key := strings.Trim(r.URL.Path, "/")
	if key == "" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if strings.Contains(key, "/") {
		http.NotFound(w, r)
		return
	}

	mode, err := domain.ParseFillMode(r.URL.Query().Get("fill_mode"))
	if err != nil {
		h.logger.Warn("bad fill_mode", "key", key, "error", err)
		http.Error(w, "Invalid fill_mode: use milestone or random", http.StatusBadRequest)
		return
	}

	svg, count, err := h.badges.View(r.Context(), key, mode)
	if err != nil {
		h.logger.Error("view count failed", "key", key, "error", err)
		http.Error(w, fmt.Sprintf("Failed to calculate view count, try again: %s", err), http.StatusInternalServerError)
		return
	}

	h.logger.Info("badge served", "key", key, "count", count, "fill_mode", mode)
	renderSVG(w, svg)
}

// renderSVG writes a badge document with the vector-image content type.
// Every request mutates the count, so caches must always revalidate.
func renderSVG(w http.ResponseWriter, svg string) {
	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "max-age=0, no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}
