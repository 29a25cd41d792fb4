// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpadapter "viewbadge/internal/adapters/http"
	"viewbadge/internal/config"
	"viewbadge/internal/services/badge"
	"viewbadge/internal/services/counter"
	"viewbadge/web"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	colorsSrc, err := loadAsset(cfg.ColorsFile, web.DefaultColors)
	if err != nil {
		logger.Error("reading colors file failed", "path", cfg.ColorsFile, "error", err)
		os.Exit(1)
	}
	templateSrc, err := loadAsset(cfg.TemplateFile, web.DefaultTemplate)
	if err != nil {
		logger.Error("reading template file failed", "path", cfg.TemplateFile, "error", err)
		os.Exit(1)
	}

	// A malformed scale or template would fail every render; refuse to start.
	scale, err := badge.NewColorScale(colorsSrc, cfg.MaxViews)
	if err != nil {
		logger.Error("invalid color scale", "error", err)
		os.Exit(1)
	}
	tmpl, err := badge.NewTemplate(templateSrc, cfg.Marker)
	if err != nil {
		logger.Error("invalid badge template", "marker", cfg.Marker, "error", err)
		os.Exit(1)
	}

	views := counter.NewCounter()

	mux := httpadapter.NewRouter(httpadapter.RouterConfig{
		Counter:  views,
		Scale:    scale,
		Template: tmpl,
		Logger:   logger,
	})

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: mux,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		logger.Info("shutting down")
		views.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}()

	logger.Info("viewbadge started",
		"addr", cfg.Addr(),
		"max_views", cfg.MaxViews,
		"colors", scale.Len(),
	)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// loadAsset reads path, or returns the embedded fallback when no path
// is configured.
func loadAsset(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
