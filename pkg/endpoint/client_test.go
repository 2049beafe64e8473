package endpoint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vertti/conncheck/pkg/check"
)

func TestRealHTTPClientFollowsRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, "/index.html", http.StatusFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := EndpointCheck{
		Name:           "frontend-root",
		URL:            srv.URL + "/",
		ExpectedStatus: 200,
		Assertions:     []Assertion{{Path: "status", Expected: "ok"}},
	}
	result := c.Run(context.Background(), NewRealHTTPClient(5*time.Second))

	if result.Status != check.StatusPass {
		t.Errorf("Status = %v, want PASS (details: %v)", result.Status, result.Details)
	}
}

func TestRealHTTPClientRedirectLoopFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	}))
	defer srv.Close()

	c := EndpointCheck{Name: "loop", URL: srv.URL + "/"}
	result := c.Run(context.Background(), NewRealHTTPClient(5*time.Second))

	if result.Status != check.StatusFail {
		t.Errorf("Status = %v, want FAIL", result.Status)
	}
	if _, ok := result.Err.(*TransportError); !ok {
		t.Errorf("Err = %T, want *TransportError", result.Err)
	}
}
