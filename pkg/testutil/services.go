package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/http/httputil"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Backend describes how the fake backend answers.
type Backend struct {
	HealthStatus   string // value of "status" in /health, default "ok"
	DatabaseStatus string // value of "database" in /api/db-check, default "connected"
	HealthCode     int    // HTTP status of /health, default 200
}

// Frontend describes how the fake frontend answers.
type Frontend struct {
	NoHealth bool // /health answers 404
	NoProxy  bool // /api/* answers 404 instead of proxying to the backend
}

// NewBackend starts a fake backend service and closes it with the test.
func NewBackend(t testing.TB, b Backend) *httptest.Server {
	t.Helper()

	if b.HealthStatus == "" {
		b.HealthStatus = "ok"
	}
	if b.DatabaseStatus == "" {
		b.DatabaseStatus = "connected"
	}
	if b.HealthCode == 0 {
		b.HealthCode = http.StatusOK
	}

	r := chi.NewRouter()
	health := func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, b.HealthCode, map[string]string{"status": b.HealthStatus})
	}
	r.Get("/health", health)
	r.Get("/api/health", health)
	r.Get("/api/db-check", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"database": b.DatabaseStatus})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// NewFrontend starts a fake frontend that proxies /api/* to backendURL.
func NewFrontend(t testing.TB, f Frontend, backendURL string) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<!doctype html><title>app</title>"))
	})
	if !f.NoHealth {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	}
	if !f.NoProxy && backendURL != "" {
		target, err := url.Parse(backendURL)
		if err != nil {
			t.Fatalf("parse backend URL: %v", err)
		}
		proxy := httputil.NewSingleHostReverseProxy(target)
		r.Handle("/api/*", proxy)
	}

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// ClosedURL returns the URL of a server that is no longer listening.
func ClosedURL(t testing.TB) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	u := srv.URL
	srv.Close()
	return u
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
