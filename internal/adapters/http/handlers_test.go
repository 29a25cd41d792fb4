// SPDX-License-Identifier: AGPL-3.0-or-later

package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"viewbadge/internal/app"
	"viewbadge/internal/services/badge"
	"viewbadge/internal/services/counter"
)

func newTestRouter(t *testing.T) (*http.ServeMux, *counter.Counter) {
	t.Helper()

	scale, err := badge.NewColorScale("000000\n888888\nffffff", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tmpl, err := badge.NewTemplate(`<svg fill="$M$"><text>$M$</text></svg>`, "$M$")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	views := counter.NewCounter()
	mux := NewRouter(RouterConfig{
		Counter:  views,
		Scale:    scale,
		Template: tmpl,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return mux, views
}

func TestIndex(t *testing.T) {
	mux, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestBadge(t *testing.T) {
	mux, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alice", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "max-age=0, no-cache, no-store, must-revalidate" {
		t.Errorf("unexpected Cache-Control: %q", cc)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected an X-Request-ID header")
	}

	expected := `<svg fill="#000000"><text>1</text></svg>`
	if body := rec.Body.String(); body != expected {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestBadgeCountsEveryRequest(t *testing.T) {
	mux, _ := newTestRouter(t)

	var body string
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alice", nil))
		body = rec.Body.String()
	}

	if !strings.Contains(body, "<text>3</text>") {
		t.Errorf("expected count 3 in body, got %q", body)
	}
}

func TestBadgeRandomFillMode(t *testing.T) {
	mux, _ := newTestRouter(t)

	for _, query := range []string{"?fill_mode=random", "?fill_mode=Random", "?fill_mode=MILESTONE"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alice"+query, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", query, rec.Code)
		}
	}
}

func TestBadgeUnknownFillMode(t *testing.T) {
	mux, views := newTestRouter(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alice?fill_mode=sparkle", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	// a rejected request must not count as a view
	if keys, _ := views.Totals(); keys != 0 {
		t.Errorf("rejected request incremented the counter: %d keys", keys)
	}
}

func TestBadgeNestedPath(t *testing.T) {
	mux, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alice/bob", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestBadgeMethodNotAllowed(t *testing.T) {
	mux, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/alice", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestBadgeCounterUnavailable(t *testing.T) {
	mux, views := newTestRouter(t)
	views.Close()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alice", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "Failed to calculate view count, try again") {
		t.Errorf("unexpected error body: %q", body)
	}
}

func TestHealthcheck(t *testing.T) {
	mux, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/healthcheck", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}

func TestStats(t *testing.T) {
	mux, _ := newTestRouter(t)

	for i := 0; i < 4; i++ {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alice", nil))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bob", nil))

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var stats app.Stats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if stats.Keys != 2 {
		t.Errorf("expected 2 keys, got %d", stats.Keys)
	}
	if stats.TotalViews != 5 {
		t.Errorf("expected 5 total views, got %d", stats.TotalViews)
	}

	// stats reads must not increment anything
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	var again app.Stats
	if err := json.NewDecoder(rec.Body).Decode(&again); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if again.TotalViews != 5 {
		t.Errorf("stats request changed totals: %d", again.TotalViews)
	}
}

func TestBadgeConcurrentRequests(t *testing.T) {
	const n = 200

	mux, views := newTestRouter(t)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alice", nil))
			if rec.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", rec.Code)
			}
		}()
	}
	wg.Wait()

	if _, total := views.Totals(); total != n {
		t.Errorf("expected %d views after %d requests, got %d", n, n, total)
	}
}
