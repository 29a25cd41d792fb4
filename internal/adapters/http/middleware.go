// SPDX-License-Identifier: AGPL-3.0-or-later

package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// LogMiddleware tags every request with a request ID and writes an
// access log line once the handler returns.
type LogMiddleware struct {
	logger *slog.Logger
}

// NewLogMiddleware creates a new LogMiddleware.
func NewLogMiddleware(logger *slog.Logger) *LogMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMiddleware{logger: logger}
}

// LogRequests wraps a handler with request-ID generation and access
// logging. The ID is echoed back in the X-Request-ID response header.
func (m *LogMiddleware) LogRequests(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next(rec, r)

		m.logger.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	}
}

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
