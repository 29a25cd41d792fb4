// SPDX-License-Identifier: AGPL-3.0-or-later

package http

import (
	"log/slog"
	"net/http"

	"viewbadge/internal/app"
	"viewbadge/internal/services/badge"
	"viewbadge/internal/services/counter"
)

// RouterConfig holds the configuration for creating a new router.
type RouterConfig struct {
	Counter  *counter.Counter
	Scale    *badge.ColorScale
	Template *badge.Template
	Logger   *slog.Logger
}

// NewRouter creates a fully wired HTTP router with all handlers and middleware.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Create application services
	badgeSvc := app.NewBadgeService(cfg.Counter, cfg.Scale, cfg.Template, logger)
	statsSvc := app.NewStatsService(cfg.Counter)

	// Create HTTP handlers
	handlers := NewHandlers(badgeSvc, statsSvc, logger)

	// Access-log middleware
	logMW := NewLogMiddleware(logger)

	// Create router
	mux := http.NewServeMux()

	// Health check (no access log)
	mux.HandleFunc("/api/v1/healthcheck", handlers.Healthcheck)

	mux.HandleFunc("/api/v1/stats", logMW.LogRequests(handlers.Stats))

	// Index and badge routes share the root pattern
	mux.HandleFunc("/", logMW.LogRequests(handlers.Badge))

	return mux
}
